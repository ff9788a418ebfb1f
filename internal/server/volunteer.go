package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"caresmv/pkg/types"
)

type volunteerRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	City             string `json:"city"`
	ZipCode          string `json:"zipCode"`
	Skills           string `json:"skills"`
	Availability     string `json:"availability"`
	Interests        string `json:"interests"`
	Experience       string `json:"experience"`
	EmergencyContact string `json:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone"`
	BackgroundCheck  bool   `json:"backgroundCheck"`
}

func (s *Service) handleVolunteerSubmit(w http.ResponseWriter, r *http.Request) {
	var req volunteerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.WithError(err).Error("failed to decode volunteer body")
		s.internalServerError(w)
		return
	}

	if !required(req.FirstName) || !required(req.LastName) || !required(req.Email) {
		s.jsonError(w, http.StatusBadRequest, "First name, last name, and email are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	volunteer, err := s.createVolunteer(ctx, req)
	if err != nil {
		if errors.Is(err, types.ErrVolunteerExists) {
			s.jsonError(w, http.StatusBadRequest, "A volunteer with this email address already exists")
			return
		}
		s.logger.WithError(err).Error("failed to create volunteer")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Volunteer application submitted successfully",
		"volunteer": map[string]any{
			"id":        volunteer.ID,
			"firstName": volunteer.FirstName,
			"lastName":  volunteer.LastName,
			"email":     volunteer.Email,
		},
	})
}

// createVolunteer runs the duplicate-email fast path and then inserts. The
// pre-check is purely a user-experience optimization; the unique index in
// the store is the authoritative guard and reports the same error.
func (s *Service) createVolunteer(ctx context.Context, req volunteerRequest) (*types.Volunteer, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.volunteers.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, types.ErrVolunteerExists
	}

	volunteer := &types.Volunteer{
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		Email:            email,
		Phone:            optional(req.Phone),
		Address:          optional(req.Address),
		City:             optional(req.City),
		ZipCode:          optional(req.ZipCode),
		Skills:           optional(req.Skills),
		Availability:     optional(req.Availability),
		Interests:        optional(req.Interests),
		Experience:       optional(req.Experience),
		EmergencyContact: optional(req.EmergencyContact),
		EmergencyPhone:   optional(req.EmergencyPhone),
		BackgroundCheck:  req.BackgroundCheck,
	}

	if err := s.volunteers.Create(ctx, volunteer); err != nil {
		return nil, err
	}

	return volunteer, nil
}

func (s *Service) handleVolunteerList(w http.ResponseWriter, r *http.Request) {
	volunteers, err := s.volunteers.ActiveVolunteers(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch volunteers")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"volunteers": volunteers})
}
