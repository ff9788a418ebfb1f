package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"caresmv/pkg/types"
)

type contactForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	Subject  string `form:"subject"`
	Message  string `form:"message"`
	IsUrgent bool   `form:"is_urgent"`
}

func (s *Service) handleContactFormSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/contact", "invalid form payload")
		return
	}

	var form contactForm
	if err := decoder.Decode(&form, r.Form); err != nil {
		s.logger.WithError(err).Error("failed to decode contact form")
		s.redirectWithError(w, r, "/contact", "invalid form payload")
		return
	}

	if !required(form.Name) || !required(form.Email) || !required(form.Message) {
		s.redirectWithError(w, r, "/contact", "Name, email, and message are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, err := s.createContactSubmission(ctx, contactRequest{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Subject:  form.Subject,
		Message:  form.Message,
		IsUrgent: form.IsUrgent,
	})
	if err != nil {
		s.logger.WithError(err).Error("failed to submit contact form")
		s.redirectWithError(w, r, "/contact", "unable to submit your message, please try again")
		return
	}

	s.redirectWithNotice(w, r, "/contact", "Thanks for reaching out! We'll be in touch soon.")
}

type volunteerForm struct {
	FirstName        string `form:"first_name"`
	LastName         string `form:"last_name"`
	Email            string `form:"email"`
	Phone            string `form:"phone"`
	Address          string `form:"address"`
	City             string `form:"city"`
	ZipCode          string `form:"zip_code"`
	Skills           string `form:"skills"`
	Availability     string `form:"availability"`
	Interests        string `form:"interests"`
	Experience       string `form:"experience"`
	EmergencyContact string `form:"emergency_contact"`
	EmergencyPhone   string `form:"emergency_phone"`
	BackgroundCheck  bool   `form:"background_check"`
}

func (s *Service) handleVolunteerFormSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/volunteer", "invalid form payload")
		return
	}

	var form volunteerForm
	if err := decoder.Decode(&form, r.Form); err != nil {
		s.logger.WithError(err).Error("failed to decode volunteer form")
		s.redirectWithError(w, r, "/volunteer", "invalid form payload")
		return
	}

	if !required(form.FirstName) || !required(form.LastName) || !required(form.Email) {
		s.redirectWithError(w, r, "/volunteer", "First name, last name, and email are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, err := s.createVolunteer(ctx, volunteerRequest{
		FirstName:        form.FirstName,
		LastName:         form.LastName,
		Email:            form.Email,
		Phone:            form.Phone,
		Address:          form.Address,
		City:             form.City,
		ZipCode:          form.ZipCode,
		Skills:           form.Skills,
		Availability:     form.Availability,
		Interests:        form.Interests,
		Experience:       form.Experience,
		EmergencyContact: form.EmergencyContact,
		EmergencyPhone:   form.EmergencyPhone,
		BackgroundCheck:  form.BackgroundCheck,
	})
	if err != nil {
		if errors.Is(err, types.ErrVolunteerExists) {
			s.redirectWithError(w, r, "/volunteer", "A volunteer with this email address already exists")
			return
		}
		s.logger.WithError(err).Error("failed to submit volunteer application")
		s.redirectWithError(w, r, "/volunteer", "unable to submit your application, please try again")
		return
	}

	s.redirectWithNotice(w, r, "/volunteer", "Volunteer application submitted")
}
