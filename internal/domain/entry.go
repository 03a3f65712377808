package domain

import "time"

// Entry is a single gratitude note. Rows are append-only: nothing in the
// backend updates or deletes an entry once it is persisted.
type Entry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (Entry) TableName() string { return "entries" }

// MaxEntryTextLen bounds the trimmed entry text, in runes.
const MaxEntryTextLen = 200
