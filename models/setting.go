package models

import "time"

// Setting is a per-user key-value preference row (theme etc.).
type Setting struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	UserID uint   `json:"user_id" gorm:"index:idx_settings_user_key,unique"`
	Key    string `json:"key" gorm:"size:60;index:idx_settings_user_key,unique"`
	Value  string `json:"value" gorm:"size:200"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
