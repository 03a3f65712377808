package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/yungbote/gratitude-backend/internal/http/handlers"
	httpMW "github.com/yungbote/gratitude-backend/internal/http/middleware"
	"github.com/yungbote/gratitude-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	CORSOrigins []string

	EntryHandler  *httpH.EntryHandler
	MoodHandler   *httpH.MoodHandler
	StatsHandler  *httpH.StatsHandler
	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestID())
	if cfg.Log != nil {
		r.Use(httpMW.RequestLogger(cfg.Log))
	}
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Healthz)
	}

	// Entries
	if cfg.EntryHandler != nil {
		r.GET("/entries/all", cfg.EntryHandler.ListEntries)
		r.POST("/entries", cfg.EntryHandler.CreateEntry)
	}

	// Moods
	if cfg.MoodHandler != nil {
		r.GET("/moods/all", cfg.MoodHandler.ListMoods)
		r.GET("/moods/meta", cfg.MoodHandler.ListMoodMeta)
		r.POST("/moods", cfg.MoodHandler.CreateMood)
	}

	// Stats
	if cfg.StatsHandler != nil {
		r.GET("/stats/overview", cfg.StatsHandler.GetOverview)
	}

	return r
}
