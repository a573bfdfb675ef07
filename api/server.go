package api

import (
	"github.com/gin-gonic/gin"

	"newsharvest/config"
	"newsharvest/store"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(cfg *config.RunConfig, st store.Store) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterScrapeRoutes(r, cfg, st)
	RegisterHealthRoutes(r, st)
	return r
}
