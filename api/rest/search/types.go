package search

import "codeberg.org/voltshop/server/internal/retriever"

// Request represents the request body for product search
type Request struct {
	Query string `json:"query" binding:"required"`
}

// Response represents a successful product search
type Response struct {
	Results []retriever.ProductResult `json:"results"`
}
