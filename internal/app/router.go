package app

import (
	internalHTTP "github.com/yungbote/gratitude-backend/internal/http"
	"github.com/yungbote/gratitude-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, handlerset Handlers) *internalHTTP.Server {
	log.Info("Wiring router...")
	return internalHTTP.NewServer(internalHTTP.RouterConfig{
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,

		EntryHandler:  handlerset.Entry,
		MoodHandler:   handlerset.Mood,
		StatsHandler:  handlerset.Stats,
		HealthHandler: handlerset.Health,
	}, cfg.Port)
}
