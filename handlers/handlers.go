package handlers

import (
	"bistro-boss-api/auth"
	"bistro-boss-api/cache"
	"bistro-boss-api/gateway"

	"gorm.io/gorm"
)

// Handler carries the dependencies every endpoint needs. Everything is
// injected from main; handlers hold no process-wide state of their own.
type Handler struct {
	DB      *gorm.DB
	Tokens  *auth.TokenService
	Gateway gateway.Gateway
	Cache   *cache.Cache // nil when Redis is not configured
}

// New builds a Handler.
func New(db *gorm.DB, tokens *auth.TokenService, gw gateway.Gateway, c *cache.Cache) *Handler {
	return &Handler{DB: db, Tokens: tokens, Gateway: gw, Cache: c}
}
