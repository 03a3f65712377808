package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/gratitude-backend/internal/domain"
)

func SeedEntry(tb testing.TB, ctx context.Context, tx *gorm.DB, text string, createdAt time.Time) *domain.Entry {
	tb.Helper()
	e := &domain.Entry{
		Text:      text,
		CreatedAt: createdAt.UTC(),
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed entry: %v", err)
	}
	return e
}

func SeedMood(tb testing.TB, ctx context.Context, tx *gorm.DB, mood, note string, createdAt time.Time) *domain.Mood {
	tb.Helper()
	m := &domain.Mood{
		Mood:      mood,
		Note:      note,
		CreatedAt: createdAt.UTC(),
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed mood: %v", err)
	}
	return m
}
