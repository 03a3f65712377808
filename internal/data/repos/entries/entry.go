package entries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/gratitude-backend/internal/domain"
	"github.com/yungbote/gratitude-backend/internal/platform/logger"
)

// EntryRepo is the read/write surface over the entries table. The list and
// count methods feed both the store RPCs and the aggregation engine; the
// aggregate feeds return raw timestamps so the bucketing stays in Go.
type EntryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entry *domain.Entry) (*domain.Entry, error)
	ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Entry, error)
	CountAll(ctx context.Context, tx *gorm.DB) (int64, error)
	CountCreatedSince(ctx context.Context, tx *gorm.DB, since time.Time) (int64, error)
	CreatedAtSince(ctx context.Context, tx *gorm.DB, since time.Time) ([]time.Time, error)
}

type entryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEntryRepo(db *gorm.DB, baseLog *logger.Logger) EntryRepo {
	repoLog := baseLog.With("repo", "EntryRepo")
	return &entryRepo{db: db, log: repoLog}
}

func (er *entryRepo) Create(ctx context.Context, tx *gorm.DB, entry *domain.Entry) (*domain.Entry, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	if err := transaction.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (er *entryRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Entry, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var results []*domain.Entry
	if err := transaction.WithContext(ctx).
		Order("created_at DESC, id ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *entryRepo) CountAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Entry{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (er *entryRepo) CountCreatedSince(ctx context.Context, tx *gorm.DB, since time.Time) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Entry{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (er *entryRepo) CreatedAtSince(ctx context.Context, tx *gorm.DB, since time.Time) ([]time.Time, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var stamps []time.Time
	if err := transaction.WithContext(ctx).
		Model(&domain.Entry{}).
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Pluck("created_at", &stamps).Error; err != nil {
		return nil, err
	}
	return stamps, nil
}
