package db_models

import "github.com/lib/pq"

// Account owns cars. Cars is the owner-side index of car ids, kept in
// lockstep with car creation and deletion by the services; there is no
// foreign key behind it, so the sync is manual and best-effort.
type Account struct {
	BaseModel
	Name         string         `json:"name"`
	Email        string         `gorm:"unique" json:"email"`
	PasswordHash string         `json:"-"`
	Cars         pq.StringArray `gorm:"type:text[]" json:"cars"`
}
