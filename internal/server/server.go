package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"caresmv/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()

// ContactStore is the contact-submission surface the handlers need.
type ContactStore interface {
	Create(ctx context.Context, submission *types.ContactSubmission) error
	Latest(ctx context.Context, limit uint64) ([]*types.ContactSubmission, error)
	Count(ctx context.Context) (int64, error)
	UrgentOpenCount(ctx context.Context) (int64, error)
}

type VolunteerStore interface {
	Create(ctx context.Context, volunteer *types.Volunteer) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ActiveVolunteers(ctx context.Context) ([]*types.Volunteer, error)
	RecentActive(ctx context.Context, limit uint64) ([]*types.Volunteer, error)
	ActiveCount(ctx context.Context) (int64, error)
}

type EventStore interface {
	Create(ctx context.Context, event *types.Event) error
	PublicEvents(ctx context.Context) ([]*types.EventWithCreator, error)
	Upcoming(ctx context.Context, limit uint64, after time.Time) ([]*types.EventWithCreator, error)
	ActiveCount(ctx context.Context) (int64, error)
}

type DonationStore interface {
	CompletedCount(ctx context.Context) (int64, error)
	CompletedAmountCents(ctx context.Context) (int64, error)
	RecentCompleted(ctx context.Context, limit uint64) ([]*types.Donation, error)
}

type UserStore interface {
	UserByEmail(ctx context.Context, email string) (*types.User, error)
}

type Service struct {
	logger     *logrus.Logger
	config     *types.Config
	templates  *template.Template
	cookie     *securecookie.SecureCookie
	signingKey []byte

	contacts   ContactStore
	volunteers VolunteerStore
	events     EventStore
	donations  DonationStore
	users      UserStore

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	contacts ContactStore,
	volunteers VolunteerStore,
	events EventStore,
	donations DonationStore,
	users UserStore,
) (*Service, error) {
	mux := flow.New()

	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)
	signingKey, _ := base64.StdEncoding.DecodeString(config.SessionSigningKey)

	s := &Service{
		logger:     logger,
		config:     config,
		cookie:     securecookie.New(hashKey, blockKey),
		signingKey: signingKey,

		contacts:   contacts,
		volunteers: volunteers,
		events:     events,
		donations:  donations,
		users:      users,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the root handler for tests.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/", s.handleHome, http.MethodGet)
	r.HandleFunc("/about", s.handleAboutPage, http.MethodGet)
	r.HandleFunc("/contact", s.handleContactPage, http.MethodGet)
	r.HandleFunc("/events", s.handleEventsPage, http.MethodGet)
	r.HandleFunc("/donate", s.handleDonatePage, http.MethodGet)
	r.HandleFunc("/volunteer", s.handleVolunteerPage, http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/forms/contact", s.handleContactFormSubmit, http.MethodPost)
	r.HandleFunc("/forms/volunteer", s.handleVolunteerFormSubmit, http.MethodPost)

	r.HandleFunc("/admin/login", s.handleGetAdminLogin, http.MethodGet)
	r.HandleFunc("/admin/login", s.handlePostAdminLogin, http.MethodPost)
	r.HandleFunc("/admin/logout", s.handleAdminLogout, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAdminPage)

		r.HandleFunc("/admin", s.handleAdminDashboardPage, http.MethodGet)
	})

	r.HandleFunc("/api/contact", s.handleContactSubmit, http.MethodPost)
	r.HandleFunc("/api/contact", s.handleContactList, http.MethodGet)
	r.HandleFunc("/api/volunteer", s.handleVolunteerSubmit, http.MethodPost)
	r.HandleFunc("/api/volunteer", s.handleVolunteerList, http.MethodGet)
	r.HandleFunc("/api/events", s.handleEventList, http.MethodGet)
	r.HandleFunc("/api/events", s.handleEventCreate, http.MethodPost)
	r.HandleFunc("/api/signup", s.handleSignup, http.MethodPost)
	r.HandleFunc("/api/auth/login", s.handleLogin, http.MethodPost)
	r.HandleFunc("/api/auth/logout", s.handleLogout, http.MethodPost)
	r.HandleFunc("/api/create-payment-intent", s.handleCreatePaymentIntent, http.MethodPost)
	r.HandleFunc("/api/webhook/stripe", s.handleStripeWebhook, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAdmin)

		r.HandleFunc("/api/admin/dashboard", s.handleDashboard, http.MethodGet)
	})

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"div": func(a, b int64) int64 {
			if b == 0 {
				return 0
			}
			return a / b
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"derefInt": func(i *int) int {
			if i == nil {
				return 0
			}
			return *i
		},
		"dollars": func(cents int64) string {
			return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}
