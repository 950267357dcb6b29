package calendar

import (
	"context"
	"log"
	"time"

	"github.com/teambition/rrule-go"
	"gorm.io/gorm"

	"github.com/sreeraksha0123/campus-sync/models"
)

const defaultMaxMeetingOccurrences = 200

// RecurrenceSource expands club meeting RRULEs into per-day records
// within a bounded window so regular meetings show up alongside one-off
// events. A profile with a broken rule is logged and skipped, matching
// the single-record failure semantics of the other sources.
type RecurrenceSource struct {
	DB   *gorm.DB
	From time.Time
	To   time.Time

	// MaxOccurrences caps expansion per club; zero means the default.
	MaxOccurrences int
}

func (s *RecurrenceSource) Name() string { return "clubs" }

func (s *RecurrenceSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	var clubs []models.ClubProfile
	if err := s.DB.WithContext(ctx).Where("meeting_rule <> ''").Find(&clubs).Error; err != nil {
		return nil, err
	}

	limit := s.MaxOccurrences
	if limit <= 0 {
		limit = defaultMaxMeetingOccurrences
	}

	var out []RawRecord
	for _, club := range clubs {
		records, err := expandMeetings(club, s.From, s.To, limit)
		if err != nil {
			log.Printf("calendar: skipping meeting rule for club %q: %v", club.Name, err)
			continue
		}
		out = append(out, records...)
	}
	return out, nil
}

// expandMeetings turns one club's meeting rule into per-day records
// within [from, to], capped at limit occurrences.
func expandMeetings(club models.ClubProfile, from, to time.Time, limit int) ([]RawRecord, error) {
	r, err := rrule.StrToRRule(club.MeetingRule)
	if err != nil {
		return nil, err
	}
	r.DTStart(from)

	occurrences := r.Between(from, to, true)
	if len(occurrences) > limit {
		occurrences = occurrences[:limit]
	}

	id := recordID(club.PublicID, club.ID, "club-meeting")
	out := make([]RawRecord, 0, len(occurrences))
	for _, occ := range occurrences {
		day := occ.Format(dayLayout)
		out = append(out, RawRecord{
			// One identifier per (club, day): duplicate expansions of
			// the same meeting collapse in the per-day dedup.
			ID:        id + ":" + day,
			CreatedAt: club.CreatedAt,
			Fields: map[string]string{
				"eventName": club.Name + " Meeting",
				"details":   club.Desc,
				"date":      day,
				"time":      club.MeetingTime,
				"venue":     club.MeetingVenue,
			},
		})
	}
	return out, nil
}
