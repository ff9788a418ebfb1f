package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"caresmv/pkg/types"
)

type contactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	IsUrgent bool   `json:"isUrgent"`
}

func (s *Service) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.WithError(err).Error("failed to decode contact body")
		s.internalServerError(w)
		return
	}

	if !required(req.Name) || !required(req.Email) || !required(req.Message) {
		s.jsonError(w, http.StatusBadRequest, "Name, email, and message are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	submission, err := s.createContactSubmission(ctx, req)
	if err != nil {
		s.logger.WithError(err).Error("failed to create contact submission")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Contact form submitted successfully",
		"submission": map[string]any{
			"id":        submission.ID,
			"name":      submission.Name,
			"email":     submission.Email,
			"subject":   submission.Subject,
			"createdAt": submission.CreatedAt,
		},
	})
}

func (s *Service) createContactSubmission(ctx context.Context, req contactRequest) (*types.ContactSubmission, error) {
	submission := &types.ContactSubmission{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    optional(req.Phone),
		Subject:  optional(req.Subject),
		Message:  strings.TrimSpace(req.Message),
		IsUrgent: req.IsUrgent,
	}

	if err := s.contacts.Create(ctx, submission); err != nil {
		return nil, err
	}

	return submission, nil
}

func (s *Service) handleContactList(w http.ResponseWriter, r *http.Request) {
	submissions, err := s.contacts.Latest(r.Context(), 50)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch contact submissions")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"submissions": submissions})
}
