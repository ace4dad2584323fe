package retriever

// cosine similarity is 1 - cosine distance (<=> is pgvector's cosine
// distance operator). Ties on similarity break by id ascending so result
// order is deterministic. Rows without embeddings are never eligible.
// The stored embedding itself is never projected.
const (
	searchProductsQuery = `
		SELECT
			id,
			title,
			price::text,
			description,
			COALESCE(image_url, ''),
			1 - (embedding <=> $1) AS similarity
		FROM products
		WHERE embedding IS NOT NULL
		  AND 1 - (embedding <=> $1) > $2
		ORDER BY similarity DESC, id ASC
		LIMIT $3
	`

	searchMaterialsQuery = `
		SELECT
			id,
			ea_number,
			name,
			description,
			category,
			time_estimation::text,
			specs,
			1 - (embedding <=> $1) AS similarity
		FROM materials
		WHERE embedding IS NOT NULL
		ORDER BY similarity DESC, id ASC
		LIMIT $2
	`
)
