package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/gratitude-backend/internal/platform/logger"
	"github.com/yungbote/gratitude-backend/internal/services"
)

type Services struct {
	Entry services.EntryService
	Mood  services.MoodService
	Stats services.StatsService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Entry: services.NewEntryService(db, log, reposet.Entry),
		Mood:  services.NewMoodService(db, log, reposet.Mood),
		Stats: services.NewStatsService(db, log, reposet.Entry, reposet.Mood),
	}
}
