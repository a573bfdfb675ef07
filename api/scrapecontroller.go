package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"newsharvest/config"
	"newsharvest/orchestrator"
	"newsharvest/store"
)

// RegisterScrapeRoutes registers the run trigger and result endpoints. Run
// scheduling stays external; POST /api/scrape/run is the hook a scheduler
// calls.
func RegisterScrapeRoutes(r *gin.Engine, cfg *config.RunConfig, st store.Store) {
	g := r.Group("/api/scrape")
	g.POST("/run", handleScrapeRun(cfg, st))
	g.GET("/latest", handleScrapeLatest(st))
}

// handleScrapeRun triggers a full pipeline cycle. It runs asynchronously and
// returns 202 Accepted immediately. The target date is re-resolved for each
// trigger so a scheduler hitting this daily always scrapes the current day.
func handleScrapeRun(cfg *config.RunConfig, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		run := cfg.ForRun()
		go func() {
			_, _ = orchestrator.RunOnce(context.Background(), run, st)
		}()
		c.JSON(http.StatusAccepted, gin.H{"status": "run started", "target_date": run.TargetDateString()})
	}
}

// handleScrapeLatest returns the most recent run's summary and records.
func handleScrapeLatest(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := st.Latest(c.Request.Context())
		if errors.Is(err, store.ErrNoRuns) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no runs recorded yet"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
