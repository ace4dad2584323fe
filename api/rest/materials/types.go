package materials

import "codeberg.org/voltshop/server/internal/retriever"

// Request represents the request body for material matching
type Request struct {
	Query string `json:"query" binding:"required"`
}

// Response represents a successful material match
type Response struct {
	Results []retriever.MaterialResult `json:"results"`
}
