package moods

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/gratitude-backend/internal/domain"
	"github.com/yungbote/gratitude-backend/internal/platform/logger"
)

// MoodRepo is the read/write surface over the moods table. MoodsSince feeds
// the aggregation engine's trend window with raw mood values; counting
// happens in Go.
type MoodRepo interface {
	Create(ctx context.Context, tx *gorm.DB, mood *domain.Mood) (*domain.Mood, error)
	ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Mood, error)
	MoodsSince(ctx context.Context, tx *gorm.DB, since time.Time) ([]string, error)
}

type moodRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMoodRepo(db *gorm.DB, baseLog *logger.Logger) MoodRepo {
	repoLog := baseLog.With("repo", "MoodRepo")
	return &moodRepo{db: db, log: repoLog}
}

func (mr *moodRepo) Create(ctx context.Context, tx *gorm.DB, mood *domain.Mood) (*domain.Mood, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	if err := transaction.WithContext(ctx).Create(mood).Error; err != nil {
		return nil, err
	}
	return mood, nil
}

func (mr *moodRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Mood, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var results []*domain.Mood
	if err := transaction.WithContext(ctx).
		Order("created_at DESC, id ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *moodRepo) MoodsSince(ctx context.Context, tx *gorm.DB, since time.Time) ([]string, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var values []string
	if err := transaction.WithContext(ctx).
		Model(&domain.Mood{}).
		Where("created_at >= ?", since).
		Pluck("mood", &values).Error; err != nil {
		return nil, err
	}
	return values, nil
}
