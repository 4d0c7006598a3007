// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account in the MirrorTime application.
//
// IDs are int64 end-to-end: history saves may reference client-generated
// identifiers that exceed the 32-bit range, so the column is wide enough to
// store them without reduction.
type User struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
