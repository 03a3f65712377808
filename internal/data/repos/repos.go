package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/gratitude-backend/internal/data/repos/entries"
	"github.com/yungbote/gratitude-backend/internal/data/repos/moods"
	"github.com/yungbote/gratitude-backend/internal/platform/logger"
)

type EntryRepo = entries.EntryRepo
type MoodRepo = moods.MoodRepo

func NewEntryRepo(db *gorm.DB, log *logger.Logger) EntryRepo {
	return entries.NewEntryRepo(db, log)
}

func NewMoodRepo(db *gorm.DB, log *logger.Logger) MoodRepo {
	return moods.NewMoodRepo(db, log)
}
