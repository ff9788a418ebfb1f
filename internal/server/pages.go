package server

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"caresmv/pkg/types"
)

type HomePageData struct {
	Title          string
	Notice         string
	Error          string
	UpcomingEvents []*types.EventWithCreator
}

type EventsPageData struct {
	Title          string
	UpcomingEvents []*types.EventWithCreator
	PastEvents     []*types.EventWithCreator
}

type DonatePageData struct {
	Title         string
	PresetAmounts []ImpactExample
	Impact        *ImpactExample
	Disabled      bool
}

type FormPageData struct {
	Title  string
	Notice string
	Error  string
}

type AdminLoginPageData struct {
	Title string
	Error string
}

type AdminDashboardPageData struct {
	Title string
	Stats *types.DashboardStats
}

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.Upcoming(r.Context(), 3, time.Now())
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch upcoming events for home page")
		events = nil
	}

	data := HomePageData{
		Title:          "411 Cares Merrimack Valley",
		Notice:         r.URL.Query().Get("notice"),
		Error:          r.URL.Query().Get("error"),
		UpcomingEvents: events,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.home", data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleAboutPage(w http.ResponseWriter, r *http.Request) {
	data := FormPageData{Title: "About Us"}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.about", data); err != nil {
		s.logger.WithError(err).Error("failed to render about page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleContactPage(w http.ResponseWriter, r *http.Request) {
	data := FormPageData{
		Title:  "Contact Us",
		Notice: r.URL.Query().Get("notice"),
		Error:  r.URL.Query().Get("error"),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.contact", data); err != nil {
		s.logger.WithError(err).Error("failed to render contact page")
		s.internalServerError(w)
		return
	}
}

// handleEventsPage renders the public event list split into upcoming and
// past buckets at render time.
func (s *Service) handleEventsPage(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.PublicEvents(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch events for events page")
		s.internalServerError(w)
		return
	}

	upcoming, past := types.PartitionEventsByStart(events, time.Now())

	data := EventsPageData{
		Title:          "Community Events",
		UpcomingEvents: upcoming,
		PastEvents:     past,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.events", data); err != nil {
		s.logger.WithError(err).Error("failed to render events page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleDonatePage(w http.ResponseWriter, r *http.Request) {
	amountCents := impactExamples[0].AmountCents
	if raw := r.URL.Query().Get("amount"); raw != "" {
		if dollars, err := strconv.ParseInt(raw, 10, 64); err == nil && dollars > 0 {
			amountCents = dollars * 100
		}
	}

	data := DonatePageData{
		Title:         "Donate",
		PresetAmounts: impactExamples,
		Impact:        impactForAmount(amountCents),
		Disabled:      true,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.donate", data); err != nil {
		s.logger.WithError(err).Error("failed to render donate page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleVolunteerPage(w http.ResponseWriter, r *http.Request) {
	data := FormPageData{
		Title:  "Volunteer With Us",
		Notice: r.URL.Query().Get("notice"),
		Error:  r.URL.Query().Get("error"),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.volunteer", data); err != nil {
		s.logger.WithError(err).Error("failed to render volunteer page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleAdminDashboardPage(w http.ResponseWriter, r *http.Request) {
	stats, err := s.fetchDashboardStats(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to aggregate dashboard stats for admin page")
		s.internalServerError(w)
		return
	}

	data := AdminDashboardPageData{
		Title: "Admin Dashboard",
		Stats: stats,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.admin-dashboard", data); err != nil {
		s.logger.WithError(err).Error("failed to render admin dashboard page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) redirectWithNotice(w http.ResponseWriter, r *http.Request, back, notice string) {
	v := url.Values{}
	v.Set("notice", notice)
	http.Redirect(w, r, back+"?"+v.Encode(), http.StatusSeeOther)
}

func (s *Service) redirectWithError(w http.ResponseWriter, r *http.Request, back, msg string) {
	v := url.Values{}
	v.Set("error", msg)
	http.Redirect(w, r, back+"?"+v.Encode(), http.StatusSeeOther)
}
