package handler

import (
	"net/http"

	"swappochat/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statsService service.StatisticsService
}

func NewStatisticsHandler(statsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{
		statsService: statsService,
	}
}

// RegisterRoutes registers statistics routes
func (h *StatisticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/statistics", h.Get)
}

// Get returns chat statistics, scoped to a user when user_id is given
// GET /api/v1/statistics?user_id=
func (h *StatisticsHandler) Get(c *gin.Context) {
	var userID *string
	if v := c.Query("user_id"); v != "" {
		userID = &v
	}

	stats, err := h.statsService.GetStatistics(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
