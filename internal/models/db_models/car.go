package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Car is one tracked vehicle. The recurring maintenance checks live in
// a single jsonb document column: the whole checks tree is read and
// written with the row, matching how the API mutates it (load car,
// transform checks, save car).
type Car struct {
	BaseModel
	Brand     string                     `json:"brand"`
	CarModel  string                     `json:"carModel"`
	AccountID uuid.UUID                  `gorm:"type:uuid;index" json:"userId"`
	Image     string                     `json:"image"`
	Checks    datatypes.JSONSlice[Check] `gorm:"type:jsonb" json:"checks"`
}

// Check is a recurring maintenance item (e.g. "Oil Change"). History is
// kept most-recent-first: completing a check prepends a fresh entry.
// The API addresses checks and history entries by position; the ids are
// stable handles so a stale index can at least be detected client-side.
type Check struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Color   string         `json:"color"`
	History []HistoryEntry `json:"history"`
}

// HistoryEntry is one scheduled or completed instance of a check.
// AddDate is stamped at creation and never changes; CheckedOn stays
// empty until the entry is completed.
type HistoryEntry struct {
	ID           string `json:"id"`
	AddDate      string `json:"addDate"`
	CheckedOn    string `json:"checkedOn"`
	InitialCheck string `json:"initialCheck"`
	NextCheck    string `json:"nextCheck"`
	Notes        string `json:"notes"`
}
