package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/yungbote/gratitude-backend/internal/data/repos"
	"github.com/yungbote/gratitude-backend/internal/domain"
	"github.com/yungbote/gratitude-backend/internal/platform/logger"
	"github.com/yungbote/gratitude-backend/internal/platform/rpcerr"
)

const (
	MoodListDefault = 30
	MoodListMax     = 100
)

// MoodService is the mood store's RPC surface. Moods outside the closed
// enumeration are rejected outright; display fallbacks live at the
// presentation boundary, never here.
type MoodService interface {
	Create(ctx context.Context, tx *gorm.DB, mood, note string) (*domain.Mood, error)
	List(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Mood, error)
}

type moodService struct {
	db       *gorm.DB
	log      *logger.Logger
	moodRepo repos.MoodRepo
}

func NewMoodService(db *gorm.DB, baseLog *logger.Logger, moodRepo repos.MoodRepo) MoodService {
	return &moodService{
		db:       db,
		log:      baseLog.With("service", "MoodService"),
		moodRepo: moodRepo,
	}
}

func (s *moodService) Create(ctx context.Context, tx *gorm.DB, mood, note string) (*domain.Mood, error) {
	value := strings.ToLower(strings.TrimSpace(mood))
	if !domain.ValidMood(value) {
		return nil, rpcerr.Invalid("invalid mood")
	}
	trimmedNote := strings.TrimSpace(note)
	if utf8.RuneCountInString(trimmedNote) > domain.MaxMoodNoteLen {
		return nil, rpcerr.Invalid("max 240 chars")
	}

	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	record := &domain.Mood{
		Mood:      value,
		Note:      trimmedNote,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.moodRepo.Create(ctx, transaction, record)
	if err != nil {
		s.log.Error("Create: insert failed", "error", err)
		return nil, rpcerr.Wrap("db error", err)
	}
	return created, nil
}

func (s *moodService) List(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Mood, error) {
	clamped := ClampLimit(limit, MoodListDefault, MoodListMax)

	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	results, err := s.moodRepo.ListRecent(ctx, transaction, clamped)
	if err != nil {
		s.log.Error("List: query failed", "error", err)
		return nil, rpcerr.Wrap("db error", err)
	}
	return results, nil
}
