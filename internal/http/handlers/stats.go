package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/gratitude-backend/internal/http/response"
	"github.com/yungbote/gratitude-backend/internal/services"
)

type StatsHandler struct {
	stats services.StatsService
}

func NewStatsHandler(stats services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GET /stats/overview
func (h *StatsHandler) GetOverview(c *gin.Context) {
	overview, err := h.stats.GetOverview(c.Request.Context(), nil)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err)
		return
	}
	response.Data(c, overview)
}
