package handlers

import (
	"log/slog"
	"net/http"

	"github.com/JunoAX/cafe-fausse/internal/admin"
	"github.com/JunoAX/cafe-fausse/internal/api"
	"github.com/gin-gonic/gin"
)

// AdminDashboard renders reservations grouped by day and slot, the
// customer list and the summary counts. Any failed fetch replaces the
// whole dashboard with one error.
func AdminDashboard(src admin.Source, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		dashboard, err := admin.Load(c.Request.Context(), src)
		if err != nil {
			logger.Error("Failed to load admin dashboard", "error", err)
			c.HTML(http.StatusOK, "admin", page(c, "", "Admin", gin.H{
				"Error":     api.Message(err),
				"Dashboard": nil,
			}))
			return
		}

		c.HTML(http.StatusOK, "admin", page(c, "", "Admin", gin.H{
			"Error":     "",
			"Dashboard": dashboard,
		}))
	}
}
