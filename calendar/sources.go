package calendar

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sreeraksha0123/campus-sync/models"
)

// The four board-backed sources. Each maps its GORM rows into RawRecords
// once, at the store boundary, so field-name variants never leak past
// this file.

func recordID(publicID string, numeric uint, prefix string) string {
	if publicID != "" {
		return publicID
	}
	return fmt.Sprintf("%s-%d", prefix, numeric)
}

type NoticeSource struct{ DB *gorm.DB }

func (s *NoticeSource) Name() string { return "notices" }

func (s *NoticeSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	var rows []models.Notice
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]RawRecord, 0, len(rows))
	for _, n := range rows {
		out = append(out, RawRecord{
			ID:        recordID(n.PublicID, n.ID, "notices"),
			CreatedAt: n.CreatedAt,
			Fields: map[string]string{
				"title":   n.Title,
				"details": n.Details,
				"date":    n.Date,
				"endDate": n.EndDate,
				"time":    n.Time,
				"venue":   n.Venue,
			},
		})
	}
	return out, nil
}

type ClubEventSource struct{ DB *gorm.DB }

func (s *ClubEventSource) Name() string { return "clubs" }

func (s *ClubEventSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	var rows []models.ClubEvent
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]RawRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, RawRecord{
			ID:        recordID(e.PublicID, e.ID, "clubs"),
			CreatedAt: e.CreatedAt,
			Fields: map[string]string{
				"eventName": e.EventName,
				"details":   e.Details,
				"date":      e.Date,
				"endDate":   e.EndDate,
				"time":      e.Time,
				"venue":     e.Venue,
			},
		})
	}
	return out, nil
}

type CompetitionSource struct{ DB *gorm.DB }

func (s *CompetitionSource) Name() string { return "competitions" }

func (s *CompetitionSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	var rows []models.Competition
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]RawRecord, 0, len(rows))
	for _, cmp := range rows {
		out = append(out, RawRecord{
			ID:        recordID(cmp.PublicID, cmp.ID, "competitions"),
			CreatedAt: cmp.CreatedAt,
			Fields: map[string]string{
				"eventName": cmp.EventName,
				"details":   cmp.Details,
				"date":      cmp.Date,
				"endDate":   cmp.EndDate,
				"time":      cmp.Time,
				"venue":     cmp.Venue,
			},
		})
	}
	return out, nil
}

type PlacementSource struct{ DB *gorm.DB }

func (s *PlacementSource) Name() string { return "placements" }

func (s *PlacementSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	var rows []models.Placement
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]RawRecord, 0, len(rows))
	for _, p := range rows {
		out = append(out, RawRecord{
			ID:        recordID(p.PublicID, p.ID, "placements"),
			CreatedAt: p.CreatedAt,
			Fields: map[string]string{
				"company":  p.Company,
				"role":     p.Role,
				"details":  p.Details,
				"deadline": p.Deadline,
				"date":     p.Date,
				"endDate":  p.EndDate,
			},
		})
	}
	return out, nil
}
