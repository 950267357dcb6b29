package models

import "time"

type Placement struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	PublicID string `json:"public_id" gorm:"uniqueIndex;size:40"`

	Company     string `json:"company" gorm:"size:160"`
	Role        string `json:"role" gorm:"size:120"`
	CTC         string `json:"ctc" gorm:"size:60"`
	Eligibility string `json:"eligibility" gorm:"size:200"`
	Details     string `json:"details" gorm:"type:text"`

	Deadline string `json:"deadline" gorm:"size:60"`
	Date     string `json:"date" gorm:"size:60"`
	EndDate  string `json:"end_date" gorm:"size:60"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
