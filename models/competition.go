package models

import "time"

type Competition struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	PublicID string `json:"public_id" gorm:"uniqueIndex;size:40"`

	EventName string `json:"event_name" gorm:"size:200"`
	Organizer string `json:"organizer" gorm:"size:120"`
	Scope     string `json:"scope" gorm:"size:60"` // "Inter" / "Intra"
	Prizes    string `json:"prizes" gorm:"size:120"`
	Details   string `json:"details" gorm:"type:text"`

	Date    string `json:"date" gorm:"size:60"`
	EndDate string `json:"end_date" gorm:"size:60"`
	Time    string `json:"time" gorm:"size:40"`
	Venue   string `json:"venue" gorm:"size:120"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
