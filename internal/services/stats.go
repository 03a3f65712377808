package services

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/gratitude-backend/internal/data/repos"
	"github.com/yungbote/gratitude-backend/internal/domain"
	"github.com/yungbote/gratitude-backend/internal/platform/logger"
	"github.com/yungbote/gratitude-backend/internal/platform/rpcerr"
)

// streakLookbackDays bounds how far back the streak scan reaches; a run
// longer than this reports the cap.
const streakLookbackDays = 60

const dayFormat = "2006-01-02"

// StatsService derives the Overview snapshot from the entry and mood data.
// It owns no state of its own: every call recomputes from scratch, and the
// five quantities come from independent queries, so a snapshot taken under
// concurrent writes may be torn. All-or-nothing on failure.
type StatsService interface {
	GetOverview(ctx context.Context, tx *gorm.DB) (*domain.Overview, error)
}

type statsService struct {
	db        *gorm.DB
	log       *logger.Logger
	entryRepo repos.EntryRepo
	moodRepo  repos.MoodRepo
	now       func() time.Time
}

func NewStatsService(db *gorm.DB, baseLog *logger.Logger, entryRepo repos.EntryRepo, moodRepo repos.MoodRepo) StatsService {
	return &statsService{
		db:        db,
		log:       baseLog.With("service", "StatsService"),
		entryRepo: entryRepo,
		moodRepo:  moodRepo,
		now:       time.Now,
	}
}

func (s *statsService) GetOverview(ctx context.Context, tx *gorm.DB) (*domain.Overview, error) {
	now := s.now().UTC()
	today := startOfDay(now)

	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	var (
		totalEntries int64
		entriesToday int64
		last7Stamps  []time.Time
		streakStamps []time.Time
		moodValues   []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalEntries, err = s.entryRepo.CountAll(gctx, transaction)
		return err
	})
	g.Go(func() error {
		var err error
		entriesToday, err = s.entryRepo.CountCreatedSince(gctx, transaction, today)
		return err
	})
	g.Go(func() error {
		var err error
		last7Stamps, err = s.entryRepo.CreatedAtSince(gctx, transaction, today.AddDate(0, 0, -6))
		return err
	})
	g.Go(func() error {
		var err error
		streakStamps, err = s.entryRepo.CreatedAtSince(gctx, transaction, today.AddDate(0, 0, -(streakLookbackDays-1)))
		return err
	})
	g.Go(func() error {
		var err error
		moodValues, err = s.moodRepo.MoodsSince(gctx, transaction, now.AddDate(0, 0, -6))
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("GetOverview: aggregate query failed", "error", err)
		return nil, rpcerr.Wrap("stats unavailable", err)
	}

	return &domain.Overview{
		TotalEntries: totalEntries,
		EntriesToday: entriesToday,
		StreakDays:   computeStreak(today, streakStamps),
		Last7Days:    buildLast7(today, last7Stamps),
		MoodTrend:    buildMoodTrend(moodValues),
	}, nil
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// buildLast7 buckets timestamps into the 7 calendar days ending at today,
// oldest first. Every day is present even with a zero count.
func buildLast7(today time.Time, stamps []time.Time) []domain.DayCount {
	counts := make(map[string]int64, 7)
	for _, ts := range stamps {
		counts[startOfDay(ts).Format(dayFormat)]++
	}

	out := make([]domain.DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		key := today.AddDate(0, 0, -i).Format(dayFormat)
		out = append(out, domain.DayCount{Date: key, Count: counts[key]})
	}
	return out
}

// computeStreak walks distinct entry days, newest first, against an expected
// cursor starting at today. The streak only counts if it includes today: an
// unbroken run that ended yesterday reports 0, not its length.
func computeStreak(today time.Time, stamps []time.Time) int {
	if len(stamps) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{}, len(stamps))
	days := make([]time.Time, 0, len(stamps))
	for _, ts := range stamps {
		day := startOfDay(ts)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	expected := today
	for _, day := range days {
		if !day.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

// buildMoodTrend counts occurrences per mood; zero-count moods are omitted
// rather than reported as 0. Ordered by count descending, then mood name,
// so the output is deterministic.
func buildMoodTrend(values []string) []domain.MoodCount {
	counts := make(map[string]int64, len(values))
	for _, v := range values {
		counts[v]++
	}

	out := make([]domain.MoodCount, 0, len(counts))
	for mood, count := range counts {
		out = append(out, domain.MoodCount{Mood: mood, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Mood < out[j].Mood
	})
	return out
}
