package main

import (
	"codeberg.org/voltshop/server/internal/assistant"
	"codeberg.org/voltshop/server/internal/config"
	"codeberg.org/voltshop/server/internal/llm"
	"codeberg.org/voltshop/server/internal/retriever"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	config   *config.Config
	services *Services
	router   *gin.Engine
}

// holds all external service clients
type Services struct {
	LLM       *llm.CompositeLLM
	Retriever *retriever.Client
	Assistant *assistant.Assistant
}
