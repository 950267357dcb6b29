package models

import "time"

type User struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	USN        string `json:"usn" gorm:"column:usn;uniqueIndex;size:20;not null"`
	Email      string `json:"email" gorm:"size:120"` // derived: <USN>@campus.sync
	Password   string `json:"-" gorm:"not null"`     // bcrypt hash
	Role       string `json:"role" gorm:"size:20;not null"` // "student" | "admin"
	Name       string `json:"name" gorm:"size:120"`
	Department string `json:"department" gorm:"size:20"` // e.g. "CSE"
	Year       string `json:"year" gorm:"size:20"`       // e.g. "2nd Year"
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
