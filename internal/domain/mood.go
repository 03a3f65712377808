package domain

import "time"

// Mood is a single mood tag with an optional free-text note. Append-only,
// same as Entry.
type Mood struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Mood      string    `gorm:"not null" json:"mood"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (Mood) TableName() string { return "moods" }

// MaxMoodNoteLen bounds the trimmed mood note, in runes.
const MaxMoodNoteLen = 240

const (
	MoodGrateful  = "grateful"
	MoodHappy     = "happy"
	MoodCalm      = "calm"
	MoodFocused   = "focused"
	MoodEnergized = "energized"
	MoodTired     = "tired"
	MoodStressed  = "stressed"
)

// AllMoods lists the closed mood enumeration in display order.
var AllMoods = []string{
	MoodGrateful,
	MoodHappy,
	MoodCalm,
	MoodFocused,
	MoodEnergized,
	MoodTired,
	MoodStressed,
}

// ValidMood reports whether m is a member of the closed enumeration. The
// store rejects anything else outright.
func ValidMood(m string) bool {
	for _, known := range AllMoods {
		if m == known {
			return true
		}
	}
	return false
}

// MoodMeta carries the presentation metadata for one mood value.
type MoodMeta struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

var moodMeta = map[string]MoodMeta{
	MoodGrateful:  {Value: MoodGrateful, Label: "Grateful", Emoji: "🙏"},
	MoodHappy:     {Value: MoodHappy, Label: "Happy", Emoji: "😄"},
	MoodCalm:      {Value: MoodCalm, Label: "Calm", Emoji: "😌"},
	MoodFocused:   {Value: MoodFocused, Label: "Focused", Emoji: "🎯"},
	MoodEnergized: {Value: MoodEnergized, Label: "Energized", Emoji: "⚡"},
	MoodTired:     {Value: MoodTired, Label: "Tired", Emoji: "😴"},
	MoodStressed:  {Value: MoodStressed, Label: "Stressed", Emoji: "😓"},
}

// MetaForMood is a total function over the mood enumeration: unrecognized
// values fall back to the grateful metadata. Presentation-boundary helper
// only; validation never goes through here.
func MetaForMood(m string) MoodMeta {
	if meta, ok := moodMeta[m]; ok {
		return meta
	}
	return moodMeta[MoodGrateful]
}
