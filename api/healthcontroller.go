package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsharvest/store"
)

// RegisterHealthRoutes registers the liveness endpoint. Besides the bare
// status it reports the last completed run, so a scheduler can tell a healthy
// idle process from one whose runs stopped landing.
func RegisterHealthRoutes(r *gin.Engine, st store.Store) {
	r.GET("/api/health", handleHealth(st))
}

func handleHealth(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{"status": "ok", "service": "newsharvest"}
		if st != nil {
			if result, err := st.Latest(c.Request.Context()); err == nil {
				body["last_run_date"] = result.TargetDate
				body["last_run_finished_at"] = result.FinishedAt
				body["last_run_total"] = result.Total
			}
		}
		c.JSON(http.StatusOK, body)
	}
}
