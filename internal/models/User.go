package models

import "gorm.io/gorm"

// User backs the database credential verifier. The default deployment runs on
// the static single-account verifier and never touches this table.
type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-"` // bcrypt hash
}
