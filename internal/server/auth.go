package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"caresmv/internal"
	"caresmv/pkg/types"

	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !required(req.Email) || !required(req.Password) {
		s.jsonError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := s.authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		s.jsonError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	encrypted, err := s.issueSession(user)
	if err != nil {
		s.logger.WithError(err).Error("failed to issue session")
		s.internalServerError(w)
		return
	}
	s.setSessionCookie(w, encrypted)

	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user": map[string]any{
			"id":        user.ID,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"role":      user.Role,
		},
	})
}

func (s *Service) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w)
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// handleSignup is a disabled acknowledgement stub; self-service signup is
// offline and admin accounts come from the seed command.
func (s *Service) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Signup temporarily disabled while authentication is offline",
		"user": map[string]any{
			"id":    "temp-user",
			"email": body.Email,
			"role":  "ADMIN",
		},
	})
}

func (s *Service) authenticate(ctx context.Context, email, password string) (*types.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	user, err := s.users.UserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if !errors.Is(err, types.ErrUserNotFound) {
			s.logger.WithError(err).Error("failed to fetch user for login")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) handleGetAdminLogin(w http.ResponseWriter, r *http.Request) {
	if session, err := s.readSession(r); err == nil && session.Role == types.UserRoleAdmin {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	data := AdminLoginPageData{
		Title: "Admin Login",
		Error: r.URL.Query().Get("error"),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.admin-login", data); err != nil {
		s.logger.WithError(err).Error("failed to render admin login page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostAdminLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/login?error=invalid+form+payload", http.StatusSeeOther)
		return
	}

	var req loginRequest
	if err := decoder.Decode(&req, r.Form); err != nil {
		s.logger.WithError(err).Error("failed to decode login form")
		http.Redirect(w, r, "/admin/login?error=invalid+form+payload", http.StatusSeeOther)
		return
	}

	user, err := s.authenticate(r.Context(), req.Email, req.Password)
	if err != nil || user.Role != types.UserRoleAdmin {
		http.Redirect(w, r, "/admin/login?error=Invalid+email+or+password", http.StatusSeeOther)
		return
	}

	encrypted, err := s.issueSession(user)
	if err != nil {
		s.logger.WithError(err).Error("failed to issue session")
		s.internalServerError(w)
		return
	}
	s.setSessionCookie(w, encrypted)

	// Check to see if this login attempt was the result of an unauthed redirect
	redirectCookie, err := r.Cookie(internal.COOKIE_REDIRECT_NAME)
	if err == nil {
		path := redirectCookie.Value
		s.clearRedirectCookie(w)
		http.Redirect(w, r, path, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Service) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
