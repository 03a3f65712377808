package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/gratitude-backend/internal/data/repos"
	"github.com/yungbote/gratitude-backend/internal/platform/logger"
)

type Repos struct {
	Entry repos.EntryRepo
	Mood  repos.MoodRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Entry: repos.NewEntryRepo(db, log),
		Mood:  repos.NewMoodRepo(db, log),
	}
}
