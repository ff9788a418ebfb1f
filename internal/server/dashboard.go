package server

import (
	"context"
	"net/http"
	"time"

	"caresmv/pkg/types"

	"golang.org/x/sync/errgroup"
)

const dashboardRecentLimit = 10

func (s *Service) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.fetchDashboardStats(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to aggregate dashboard stats")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, stats)
}

// fetchDashboardStats fans out the dashboard reads concurrently and merges
// the results. The reads are independent snapshots; a failure in any one
// fails the whole aggregation.
func (s *Service) fetchDashboardStats(ctx context.Context) (*types.DashboardStats, error) {
	var stats types.DashboardStats
	now := time.Now()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.donations.CompletedCount(ctx)
		stats.TotalDonations = count
		return err
	})
	g.Go(func() error {
		total, err := s.donations.CompletedAmountCents(ctx)
		stats.TotalDonationAmountCents = total
		return err
	})
	g.Go(func() error {
		count, err := s.volunteers.ActiveCount(ctx)
		stats.TotalVolunteers = count
		return err
	})
	g.Go(func() error {
		count, err := s.events.ActiveCount(ctx)
		stats.TotalEvents = count
		return err
	})
	g.Go(func() error {
		count, err := s.contacts.Count(ctx)
		stats.TotalContacts = count
		return err
	})
	g.Go(func() error {
		count, err := s.contacts.UrgentOpenCount(ctx)
		stats.UrgentContacts = count
		return err
	})
	g.Go(func() error {
		donations, err := s.donations.RecentCompleted(ctx, dashboardRecentLimit)
		stats.RecentDonations = donations
		return err
	})
	g.Go(func() error {
		volunteers, err := s.volunteers.RecentActive(ctx, dashboardRecentLimit)
		stats.RecentVolunteers = volunteers
		return err
	})
	g.Go(func() error {
		contacts, err := s.contacts.Latest(ctx, dashboardRecentLimit)
		stats.RecentContacts = contacts
		return err
	})
	g.Go(func() error {
		events, err := s.events.Upcoming(ctx, dashboardRecentLimit, now)
		stats.UpcomingEvents = events
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}
