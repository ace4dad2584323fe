package retriever

// The two catalogs apply deliberately asymmetric policies: product search
// filters out weak matches so the shop UI never suggests unrelated items,
// while material matching must always surface a best-available candidate
// for the estimator to review, even under poor confidence. Kept as explicit
// configuration rather than a unified threshold.

const (
	productSimilarityFloor = 0.5
	productResultLimit     = 4
	materialResultLimit    = 3
)

func productPolicy() Policy {
	floor := productSimilarityFloor
	return Policy{MinSimilarity: &floor, Limit: productResultLimit}
}

func materialPolicy() Policy {
	return Policy{MinSimilarity: nil, Limit: materialResultLimit}
}
