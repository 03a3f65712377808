package app

import (
	httpH "github.com/yungbote/gratitude-backend/internal/http/handlers"
	"github.com/yungbote/gratitude-backend/internal/platform/logger"
)

type Handlers struct {
	Entry  *httpH.EntryHandler
	Mood   *httpH.MoodHandler
	Stats  *httpH.StatsHandler
	Health *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Entry:  httpH.NewEntryHandler(serviceset.Entry),
		Mood:   httpH.NewMoodHandler(serviceset.Mood),
		Stats:  httpH.NewStatsHandler(serviceset.Stats),
		Health: httpH.NewHealthHandler(),
	}
}
