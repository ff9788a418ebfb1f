package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"caresmv/pkg/types"
)

type eventRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	Address       string `json:"address"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	IsAllDay      bool   `json:"isAllDay"`
	Category      string `json:"category"`
	MaxVolunteers *int   `json:"maxVolunteers"`
	ImageURL      string `json:"imageUrl"`
	ContactEmail  string `json:"contactEmail"`
	ContactPhone  string `json:"contactPhone"`
	Requirements  string `json:"requirements"`
	CreatedByID   string `json:"createdById"`
}

func (s *Service) handleEventList(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.PublicEvents(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch events")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (s *Service) handleEventCreate(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.WithError(err).Error("failed to decode event body")
		s.internalServerError(w)
		return
	}

	if !required(req.Title) || !required(req.StartDate) || !required(req.CreatedByID) {
		s.jsonError(w, http.StatusBadRequest, "Title, start date, and creator ID are required")
		return
	}

	startDate, err := parseEventDate(req.StartDate)
	if err != nil {
		s.jsonError(w, http.StatusBadRequest, "Start date is not a valid date")
		return
	}

	event := &types.Event{
		Title:        strings.TrimSpace(req.Title),
		Description:  optional(req.Description),
		Location:     optional(req.Location),
		Address:      optional(req.Address),
		StartDate:    startDate,
		StartTime:    optional(req.StartTime),
		EndTime:      optional(req.EndTime),
		IsAllDay:     req.IsAllDay,
		Category:     types.EventCategory(strings.TrimSpace(req.Category)),
		ImageURL:     optional(req.ImageURL),
		ContactEmail: optional(req.ContactEmail),
		ContactPhone: optional(req.ContactPhone),
		Requirements: optional(req.Requirements),
		CreatedByID:  strings.TrimSpace(req.CreatedByID),
	}

	if required(req.EndDate) {
		endDate, err := parseEventDate(req.EndDate)
		if err != nil {
			s.jsonError(w, http.StatusBadRequest, "End date is not a valid date")
			return
		}
		event.EndDate = &endDate
	}

	if req.MaxVolunteers != nil && *req.MaxVolunteers > 0 {
		event.MaxVolunteers = req.MaxVolunteers
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.events.Create(ctx, event); err != nil {
		s.logger.WithError(err).Error("failed to create event")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Event created successfully",
		"event":   event,
	})
}

var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseEventDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range eventDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
