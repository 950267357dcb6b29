package models

import "time"

// Notice is an academic-board post. Date fields stay free-form strings;
// the calendar layer canonicalises them when building the day index.
type Notice struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	PublicID string `json:"public_id" gorm:"uniqueIndex;size:40"`

	Title   string `json:"title" gorm:"size:200"`
	Details string `json:"details" gorm:"type:text"`

	Date    string `json:"date" gorm:"size:60"`
	EndDate string `json:"end_date" gorm:"size:60"`
	Time    string `json:"time" gorm:"size:40"`
	Venue   string `json:"venue" gorm:"size:120"`

	TargetDept string `json:"target_dept" gorm:"size:20;index"` // "All" or a department code
	TargetYear string `json:"target_year" gorm:"size:20;index"` // "General" or "1st Year"..."4th Year"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
