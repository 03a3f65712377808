package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/gratitude-backend/internal/domain"
	httpH "github.com/yungbote/gratitude-backend/internal/http/handlers"
	"github.com/yungbote/gratitude-backend/internal/platform/rpcerr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubEntryService struct {
	rows      []*domain.Entry
	listErr   error
	createErr error

	gotText  string
	gotLimit int
}

func (s *stubEntryService) Create(ctx context.Context, tx *gorm.DB, text string) (*domain.Entry, error) {
	s.gotText = text
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.Entry{ID: 1, Text: strings.TrimSpace(text), CreatedAt: time.Now().UTC()}, nil
}

func (s *stubEntryService) List(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Entry, error) {
	s.gotLimit = limit
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.rows, nil
}

type stubMoodService struct {
	rows      []*domain.Mood
	listErr   error
	createErr error

	gotMood  string
	gotLimit int
}

func (s *stubMoodService) Create(ctx context.Context, tx *gorm.DB, mood, note string) (*domain.Mood, error) {
	s.gotMood = mood
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.Mood{ID: 1, Mood: mood, Note: note, CreatedAt: time.Now().UTC()}, nil
}

func (s *stubMoodService) List(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Mood, error) {
	s.gotLimit = limit
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.rows, nil
}

type stubStatsService struct {
	overview *domain.Overview
	err      error
}

func (s *stubStatsService) GetOverview(ctx context.Context, tx *gorm.DB) (*domain.Overview, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.overview, nil
}

func newTestRouter(entries *stubEntryService, moods *stubMoodService, stats *stubStatsService) *gin.Engine {
	return NewRouter(RouterConfig{
		EntryHandler:  httpH.NewEntryHandler(entries),
		MoodHandler:   httpH.NewMoodHandler(moods),
		StatsHandler:  httpH.NewStatsHandler(stats),
		HealthHandler: httpH.NewHealthHandler(),
	})
}

func do(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(&stubEntryService{}, &stubMoodService{}, &stubStatsService{})

	w := do(t, router, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body["ok"] {
		t.Fatalf("expected ok true, got %s", w.Body.String())
	}
}

func TestListEntriesEnvelope(t *testing.T) {
	entries := &stubEntryService{rows: []*domain.Entry{
		{ID: 2, Text: "newest", CreatedAt: time.Now().UTC()},
		{ID: 1, Text: "older", CreatedAt: time.Now().UTC().Add(-time.Hour)},
	}}
	router := newTestRouter(entries, &stubMoodService{}, &stubStatsService{})

	w := do(t, router, http.MethodGet, "/entries/all?limit=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Rows []*domain.Entry `json:"rows"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Rows) != 2 || body.Rows[0].Text != "newest" {
		t.Fatalf("unexpected rows: %s", w.Body.String())
	}
}

func TestListEntriesClampsBeforeForwarding(t *testing.T) {
	cases := []struct {
		query string
		want  int
	}{
		{"?limit=10000", 200},
		{"?limit=0", 50},
		{"?limit=-5", 50},
		{"?limit=abc", 50},
		{"", 50},
	}
	for _, tc := range cases {
		entries := &stubEntryService{}
		router := newTestRouter(entries, &stubMoodService{}, &stubStatsService{})

		w := do(t, router, http.MethodGet, "/entries/all"+tc.query, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%q: status = %d", tc.query, w.Code)
		}
		if entries.gotLimit != tc.want {
			t.Fatalf("%q: forwarded limit %d, want %d", tc.query, entries.gotLimit, tc.want)
		}
	}
}

func TestListEntriesEmptyIsArray(t *testing.T) {
	router := newTestRouter(&stubEntryService{}, &stubMoodService{}, &stubStatsService{})

	w := do(t, router, http.MethodGet, "/entries/all", "")
	if !strings.Contains(w.Body.String(), `"rows":[]`) {
		t.Fatalf("empty list should serialize as [], got %s", w.Body.String())
	}
}

func TestListEntriesBackendFailure(t *testing.T) {
	entries := &stubEntryService{listErr: rpcerr.Wrap("db error", errors.New("pg down"))}
	router := newTestRouter(entries, &stubMoodService{}, &stubStatsService{})

	w := do(t, router, http.MethodGet, "/entries/all", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "db error" {
		t.Fatalf("backend detail leaked: %q", body.Error)
	}
}

func TestCreateEntry(t *testing.T) {
	entries := &stubEntryService{}
	router := newTestRouter(entries, &stubMoodService{}, &stubStatsService{})

	w := do(t, router, http.MethodPost, "/entries", `{"text":"grateful for rain"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var body struct {
		OK    bool          `json:"ok"`
		Entry *domain.Entry `json:"entry"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.OK || body.Entry == nil || body.Entry.Text != "grateful for rain" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCreateEntryValidationMapsTo400(t *testing.T) {
	entries := &stubEntryService{createErr: rpcerr.Invalid("text is required")}
	router := newTestRouter(entries, &stubMoodService{}, &stubStatsService{})

	w := do(t, router, http.MethodPost, "/entries", `{"text":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.OK || body.Error != "text is required" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCreateEntryBackendMapsTo500(t *testing.T) {
	entries := &stubEntryService{createErr: rpcerr.Wrap("db error", errors.New("write failed"))}
	router := newTestRouter(entries, &stubMoodService{}, &stubStatsService{})

	w := do(t, router, http.MethodPost, "/entries", `{"text":"hello"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "write failed") {
		t.Fatalf("backend detail leaked: %s", w.Body.String())
	}
}

func TestCreateMoodInvalid(t *testing.T) {
	moods := &stubMoodService{createErr: rpcerr.Invalid("invalid mood")}
	router := newTestRouter(&stubEntryService{}, moods, &stubStatsService{})

	w := do(t, router, http.MethodPost, "/moods", `{"mood":"ecstatic","note":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid mood") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestListMoodsClampsBeforeForwarding(t *testing.T) {
	moods := &stubMoodService{}
	router := newTestRouter(&stubEntryService{}, moods, &stubStatsService{})

	w := do(t, router, http.MethodGet, "/moods/all?limit=10000", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if moods.gotLimit != 100 {
		t.Fatalf("forwarded limit %d, want 100", moods.gotLimit)
	}
}

func TestListMoodMeta(t *testing.T) {
	router := newTestRouter(&stubEntryService{}, &stubMoodService{}, &stubStatsService{})

	w := do(t, router, http.MethodGet, "/moods/meta", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Rows []domain.MoodMeta `json:"rows"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Rows) != len(domain.AllMoods) {
		t.Fatalf("expected %d metas, got %d", len(domain.AllMoods), len(body.Rows))
	}
	for i, meta := range body.Rows {
		if meta.Value != domain.AllMoods[i] {
			t.Fatalf("meta %d out of order: %+v", i, meta)
		}
		if meta.Label == "" || meta.Emoji == "" {
			t.Fatalf("meta %d incomplete: %+v", i, meta)
		}
	}
}

func TestServerServesWiredRoutes(t *testing.T) {
	s := NewServer(RouterConfig{
		EntryHandler:  httpH.NewEntryHandler(&stubEntryService{}),
		MoodHandler:   httpH.NewMoodHandler(&stubMoodService{}),
		StatsHandler:  httpH.NewStatsHandler(&stubStatsService{}),
		HealthHandler: httpH.NewHealthHandler(),
	}, "0")

	w := do(t, s.Engine, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	w = do(t, s.Engine, http.MethodGet, "/entries/all", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestGetOverviewEnvelope(t *testing.T) {
	stats := &stubStatsService{overview: &domain.Overview{
		TotalEntries: 12,
		EntriesToday: 2,
		StreakDays:   3,
		Last7Days: []domain.DayCount{
			{Date: "2026-03-04", Count: 0}, {Date: "2026-03-05", Count: 1},
			{Date: "2026-03-06", Count: 0}, {Date: "2026-03-07", Count: 2},
			{Date: "2026-03-08", Count: 1}, {Date: "2026-03-09", Count: 4},
			{Date: "2026-03-10", Count: 2},
		},
		MoodTrend: []domain.MoodCount{{Mood: "calm", Count: 5}},
	}}
	router := newTestRouter(&stubEntryService{}, &stubMoodService{}, stats)

	w := do(t, router, http.MethodGet, "/stats/overview", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Data *domain.Overview `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data == nil || body.Data.TotalEntries != 12 || len(body.Data.Last7Days) != 7 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestGetOverviewFailure(t *testing.T) {
	stats := &stubStatsService{err: rpcerr.Wrap("stats unavailable", errors.New("pg down"))}
	router := newTestRouter(&stubEntryService{}, &stubMoodService{}, stats)

	w := do(t, router, http.MethodGet, "/stats/overview", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "stats unavailable") || strings.Contains(w.Body.String(), "pg down") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
