package models

import (
	"time"
)

// Time type labels produced by the classifier and stored on history items.
// The store treats the column as an opaque string so locale-specific labels
// from older clients remain readable.
const (
	TypeMirrorHour   = "Mirror Hour"
	TypeReversedHour = "Reversed Hour"
	TypeRegularHour  = "Regular Hour"
)

// HistoryItem is a saved interpretation in a user's history.
//
// Details holds a serialized JSON snapshot of the interpretation blocks at
// save time. It is persisted as opaque text and never parsed server-side;
// clients re-parse it on read.
type HistoryItem struct {
	ID       int64     `gorm:"primaryKey" json:"id"`
	UserID   int64     `gorm:"index;not null" json:"userId"`
	Time     string    `gorm:"not null" json:"time"`
	Type     string    `gorm:"not null" json:"type"`
	Thoughts string    `json:"thoughts,omitempty"`
	Details  string    `json:"details,omitempty"`
	SavedAt  time.Time `gorm:"index" json:"savedAt"`
}
