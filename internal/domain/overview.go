package domain

// DayCount is one bucket of the 7-day entry histogram. Date is a UTC
// calendar day formatted YYYY-MM-DD.
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// MoodCount is one mood's occurrence count inside the trailing window.
// Moods with zero occurrences are omitted entirely.
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int64  `json:"count"`
}

// Overview is the derived statistics snapshot. It is recomputed on every
// request and never persisted; the five fields come from independent
// queries, so a snapshot taken under concurrent writes may be torn.
type Overview struct {
	TotalEntries int64       `json:"total_entries"`
	EntriesToday int64       `json:"entries_today"`
	StreakDays   int         `json:"streak_days"`
	Last7Days    []DayCount  `json:"last7_days"`
	MoodTrend    []MoodCount `json:"mood_trend"`
}
