package storage

// a product record prepared for ingestion; Content is the descriptive
// text blob the embedding is computed from
type ProductRecord struct {
	ID          int
	Title       string
	Description string
	Price       string
	Category    string
	Brand       string
	ImageURL    string
	Content     string
}

// a material record prepared for ingestion
type MaterialRecord struct {
	ID             int
	EANumber       string
	Name           string
	Description    string
	Category       string
	Specs          map[string]any
	TimeEstimation string
	Price          string
}
