package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/gratitude-backend/internal/domain"
	"github.com/yungbote/gratitude-backend/internal/http/response"
	"github.com/yungbote/gratitude-backend/internal/services"
)

type MoodHandler struct {
	moods services.MoodService
}

func NewMoodHandler(moods services.MoodService) *MoodHandler {
	return &MoodHandler{moods: moods}
}

type createMoodRequest struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
}

type createMoodResponse struct {
	OK   bool         `json:"ok"`
	Mood *domain.Mood `json:"mood"`
}

// GET /moods/all
func (h *MoodHandler) ListMoods(c *gin.Context) {
	limit := services.ClampLimit(parseLimit(c), services.MoodListDefault, services.MoodListMax)

	rows, err := h.moods.List(c.Request.Context(), nil, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err)
		return
	}
	if rows == nil {
		rows = []*domain.Mood{}
	}
	response.Rows(c, rows)
}

// GET /moods/meta serves the display metadata for the closed mood set so
// clients never hardcode labels or emoji.
func (h *MoodHandler) ListMoodMeta(c *gin.Context) {
	metas := make([]domain.MoodMeta, 0, len(domain.AllMoods))
	for _, m := range domain.AllMoods {
		metas = append(metas, domain.MetaForMood(m))
	}
	response.Rows(c, metas)
}

// POST /moods
func (h *MoodHandler) CreateMood(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 1<<15)

	var req createMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CreateFailed(c, http.StatusBadRequest, err)
		return
	}

	mood, err := h.moods.Create(c.Request.Context(), nil, req.Mood, req.Note)
	if err != nil {
		response.CreateFailed(c, response.StatusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, createMoodResponse{OK: true, Mood: mood})
}
