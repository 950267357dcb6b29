package models

import "time"

// ClubProfile is a registered club. MeetingRule optionally holds an
// RRULE string (e.g. "FREQ=WEEKLY;BYDAY=FR") so regular meetings can
// be expanded into the shared calendar.
type ClubProfile struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	PublicID string `json:"public_id" gorm:"uniqueIndex;size:40"`

	Name     string `json:"name" gorm:"size:120;not null"`
	Category string `json:"category" gorm:"size:60"` // e.g. "Tech" / "Art"
	Desc     string `json:"desc" gorm:"type:text"`

	MeetingRule  string `json:"meeting_rule" gorm:"size:200"`
	MeetingVenue string `json:"meeting_venue" gorm:"size:120"`
	MeetingTime  string `json:"meeting_time" gorm:"size:40"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClubEvent is a one-off event posted by a club.
type ClubEvent struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	PublicID string `json:"public_id" gorm:"uniqueIndex;size:40"`

	EventName string `json:"event_name" gorm:"size:200"`
	Organizer string `json:"organizer" gorm:"size:120;index"` // club name
	Details   string `json:"details" gorm:"type:text"`

	Date    string `json:"date" gorm:"size:60"`
	EndDate string `json:"end_date" gorm:"size:60"`
	Time    string `json:"time" gorm:"size:40"`
	Venue   string `json:"venue" gorm:"size:120"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
