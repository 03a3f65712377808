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
	EntryListDefault = 50
	EntryListMax     = 200
)

// EntryService is the entry store's RPC surface: a validated append and a
// most-recent-first list. There are no update or delete operations.
type EntryService interface {
	Create(ctx context.Context, tx *gorm.DB, text string) (*domain.Entry, error)
	List(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Entry, error)
}

type entryService struct {
	db        *gorm.DB
	log       *logger.Logger
	entryRepo repos.EntryRepo
}

func NewEntryService(db *gorm.DB, baseLog *logger.Logger, entryRepo repos.EntryRepo) EntryService {
	return &entryService{
		db:        db,
		log:       baseLog.With("service", "EntryService"),
		entryRepo: entryRepo,
	}
}

func (s *entryService) Create(ctx context.Context, tx *gorm.DB, text string) (*domain.Entry, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return nil, rpcerr.Invalid("text is required")
	}
	if utf8.RuneCountInString(raw) > domain.MaxEntryTextLen {
		return nil, rpcerr.Invalid("max 200 chars")
	}

	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	entry := &domain.Entry{
		Text:      raw,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.entryRepo.Create(ctx, transaction, entry)
	if err != nil {
		s.log.Error("Create: insert failed", "error", err)
		return nil, rpcerr.Wrap("db error", err)
	}
	return created, nil
}

func (s *entryService) List(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Entry, error) {
	clamped := ClampLimit(limit, EntryListDefault, EntryListMax)

	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	results, err := s.entryRepo.ListRecent(ctx, transaction, clamped)
	if err != nil {
		s.log.Error("List: query failed", "error", err)
		return nil, rpcerr.Wrap("db error", err)
	}
	return results, nil
}

// ClampLimit folds a requested page size into [1, max]: zero or negative
// requests fall back to the default. Both the facade and the stores clamp,
// independently.
func ClampLimit(requested, def, max int) int {
	if requested <= 0 {
		return def
	}
	if requested > max {
		return max
	}
	return requested
}
