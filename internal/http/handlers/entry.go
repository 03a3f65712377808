package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/gratitude-backend/internal/domain"
	"github.com/yungbote/gratitude-backend/internal/http/response"
	"github.com/yungbote/gratitude-backend/internal/services"
)

type EntryHandler struct {
	entries services.EntryService
}

func NewEntryHandler(entries services.EntryService) *EntryHandler {
	return &EntryHandler{entries: entries}
}

type createEntryRequest struct {
	Text string `json:"text"`
}

type createEntryResponse struct {
	OK    bool          `json:"ok"`
	Entry *domain.Entry `json:"entry"`
}

// GET /entries/all
func (h *EntryHandler) ListEntries(c *gin.Context) {
	limit := services.ClampLimit(parseLimit(c), services.EntryListDefault, services.EntryListMax)

	rows, err := h.entries.List(c.Request.Context(), nil, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err)
		return
	}
	if rows == nil {
		rows = []*domain.Entry{}
	}
	response.Rows(c, rows)
}

// POST /entries
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 1<<15)

	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CreateFailed(c, http.StatusBadRequest, err)
		return
	}

	entry, err := h.entries.Create(c.Request.Context(), nil, req.Text)
	if err != nil {
		response.CreateFailed(c, response.StatusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, createEntryResponse{OK: true, Entry: entry})
}

// parseLimit reads ?limit=N, treating absent or malformed values as zero so
// the clamp falls back to the default. The stores re-clamp independently.
func parseLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
