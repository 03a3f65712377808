package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/gratitude-backend/internal/domain"
	"github.com/yungbote/gratitude-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

// stubEntryRepo records calls and serves canned results, failing any method
// whose name is set in failOn. The aggregator hits it from several
// goroutines at once, so mutations take the lock.
type stubEntryRepo struct {
	mu      sync.Mutex
	entries []*domain.Entry
	stamps  []time.Time

	failOn map[string]error

	createdWith *domain.Entry
	listLimit   int
	sinceArgs   []time.Time
	gotTx       *gorm.DB
	txSeen      []*gorm.DB

	nextID int64
}

func (r *stubEntryRepo) fail(method string) error {
	if r.failOn == nil {
		return nil
	}
	return r.failOn[method]
}

func (r *stubEntryRepo) Create(ctx context.Context, tx *gorm.DB, entry *domain.Entry) (*domain.Entry, error) {
	if err := r.fail("Create"); err != nil {
		return nil, err
	}
	r.nextID++
	entry.ID = r.nextID
	r.createdWith = entry
	r.gotTx = tx
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *stubEntryRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Entry, error) {
	if err := r.fail("ListRecent"); err != nil {
		return nil, err
	}
	r.listLimit = limit
	r.gotTx = tx
	return r.entries, nil
}

func (r *stubEntryRepo) CountAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	if err := r.fail("CountAll"); err != nil {
		return 0, err
	}
	return int64(len(r.entries)), nil
}

func (r *stubEntryRepo) CountCreatedSince(ctx context.Context, tx *gorm.DB, since time.Time) (int64, error) {
	if err := r.fail("CountCreatedSince"); err != nil {
		return 0, err
	}
	var n int64
	for _, ts := range r.stamps {
		if !ts.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *stubEntryRepo) CreatedAtSince(ctx context.Context, tx *gorm.DB, since time.Time) ([]time.Time, error) {
	if err := r.fail("CreatedAtSince"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.sinceArgs = append(r.sinceArgs, since)
	r.txSeen = append(r.txSeen, tx)
	r.mu.Unlock()
	var out []time.Time
	for _, ts := range r.stamps {
		if !ts.Before(since) {
			out = append(out, ts)
		}
	}
	return out, nil
}

type stubMoodRepo struct {
	moods []*domain.Mood

	failOn map[string]error

	createdWith *domain.Mood
	listLimit   int
	gotTx       *gorm.DB

	nextID int64
}

func (r *stubMoodRepo) fail(method string) error {
	if r.failOn == nil {
		return nil
	}
	return r.failOn[method]
}

func (r *stubMoodRepo) Create(ctx context.Context, tx *gorm.DB, mood *domain.Mood) (*domain.Mood, error) {
	if err := r.fail("Create"); err != nil {
		return nil, err
	}
	r.nextID++
	mood.ID = r.nextID
	r.createdWith = mood
	r.gotTx = tx
	r.moods = append(r.moods, mood)
	return mood, nil
}

func (r *stubMoodRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Mood, error) {
	if err := r.fail("ListRecent"); err != nil {
		return nil, err
	}
	r.listLimit = limit
	r.gotTx = tx
	return r.moods, nil
}

func (r *stubMoodRepo) MoodsSince(ctx context.Context, tx *gorm.DB, since time.Time) ([]string, error) {
	if err := r.fail("MoodsSince"); err != nil {
		return nil, err
	}
	var out []string
	for _, m := range r.moods {
		if !m.CreatedAt.Before(since) {
			out = append(out, m.Mood)
		}
	}
	return out, nil
}
