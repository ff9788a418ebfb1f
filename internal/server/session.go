package server

import (
	"fmt"
	"net/http"
	"time"

	"caresmv/pkg/types"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
)

type sessionClaims struct {
	UserID string
	Email  string
	Role   types.UserRole
}

// issueSession builds a signed session token for the user and returns the
// encrypted cookie value.
func (s *Service) issueSession(user *types.User) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		Subject(user.ID).
		IssuedAt(now).
		Expiration(now.Add(time.Duration(s.config.SessionMaxAgeSec) * time.Second)).
		Claim("email", user.Email).
		Claim("role", string(user.Role)).
		Build()
	if err != nil {
		return "", fmt.Errorf("build session token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), s.signingKey))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	encrypted, err := s.cookie.Encode(s.config.CookieName, string(signed))
	if err != nil {
		return "", fmt.Errorf("encrypt session token: %w", err)
	}

	return encrypted, nil
}

// readSession reverses issueSession: decrypt the cookie, then validate the
// signed token and pull the claims out.
func (s *Service) readSession(r *http.Request) (*sessionClaims, error) {
	cookie, err := r.Cookie(s.config.CookieName)
	if err != nil {
		return nil, fmt.Errorf("no session cookie: %w", err)
	}

	var rawToken string
	if err := s.cookie.Decode(s.config.CookieName, cookie.Value, &rawToken); err != nil {
		return nil, fmt.Errorf("decrypt session cookie: %w", err)
	}

	token, err := jwt.Parse(
		[]byte(rawToken),
		jwt.WithKey(jwa.HS256(), s.signingKey),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}

	userID, ok := token.Subject()
	if !ok || userID == "" {
		return nil, fmt.Errorf("session token has no subject")
	}

	var email string
	if err := token.Get("email", &email); err != nil {
		s.logger.WithError(err).Warn("no email claim in session token")
	}

	var role string
	if err := token.Get("role", &role); err != nil {
		return nil, fmt.Errorf("session token has no role claim: %w", err)
	}

	return &sessionClaims{
		UserID: userID,
		Email:  email,
		Role:   types.UserRole(role),
	}, nil
}

func (s *Service) setSessionCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    value,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   s.config.SessionMaxAgeSec,
		Path:     "/",
	})
}

func (s *Service) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Path:     "/",
	})
}
