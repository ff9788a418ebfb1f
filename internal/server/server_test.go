package server

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"io"
	"net/http"
	"testing"
	"time"

	"caresmv/internal/utils"
	"caresmv/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeContactStore struct {
	createFn          func(ctx context.Context, submission *types.ContactSubmission) error
	latestFn          func(ctx context.Context, limit uint64) ([]*types.ContactSubmission, error)
	countFn           func(ctx context.Context) (int64, error)
	urgentOpenCountFn func(ctx context.Context) (int64, error)
}

func (f *fakeContactStore) Create(ctx context.Context, submission *types.ContactSubmission) error {
	if f.createFn != nil {
		return f.createFn(ctx, submission)
	}
	submission.ID = utils.NanoID()
	submission.CreatedAt = time.Now()
	if submission.Status == "" {
		submission.Status = types.ContactStatusNew
	}
	return nil
}

func (f *fakeContactStore) Latest(ctx context.Context, limit uint64) ([]*types.ContactSubmission, error) {
	if f.latestFn != nil {
		return f.latestFn(ctx, limit)
	}
	return []*types.ContactSubmission{}, nil
}

func (f *fakeContactStore) Count(ctx context.Context) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx)
	}
	return 0, nil
}

func (f *fakeContactStore) UrgentOpenCount(ctx context.Context) (int64, error) {
	if f.urgentOpenCountFn != nil {
		return f.urgentOpenCountFn(ctx)
	}
	return 0, nil
}

type fakeVolunteerStore struct {
	createFn        func(ctx context.Context, volunteer *types.Volunteer) error
	existsByEmailFn func(ctx context.Context, email string) (bool, error)
	activeFn        func(ctx context.Context) ([]*types.Volunteer, error)
	recentActiveFn  func(ctx context.Context, limit uint64) ([]*types.Volunteer, error)
	activeCountFn   func(ctx context.Context) (int64, error)
}

func (f *fakeVolunteerStore) Create(ctx context.Context, volunteer *types.Volunteer) error {
	if f.createFn != nil {
		return f.createFn(ctx, volunteer)
	}
	volunteer.ID = utils.NanoID()
	volunteer.CreatedAt = time.Now()
	volunteer.IsActive = true
	return nil
}

func (f *fakeVolunteerStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.existsByEmailFn != nil {
		return f.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (f *fakeVolunteerStore) ActiveVolunteers(ctx context.Context) ([]*types.Volunteer, error) {
	if f.activeFn != nil {
		return f.activeFn(ctx)
	}
	return []*types.Volunteer{}, nil
}

func (f *fakeVolunteerStore) RecentActive(ctx context.Context, limit uint64) ([]*types.Volunteer, error) {
	if f.recentActiveFn != nil {
		return f.recentActiveFn(ctx, limit)
	}
	return []*types.Volunteer{}, nil
}

func (f *fakeVolunteerStore) ActiveCount(ctx context.Context) (int64, error) {
	if f.activeCountFn != nil {
		return f.activeCountFn(ctx)
	}
	return 0, nil
}

type fakeEventStore struct {
	createFn       func(ctx context.Context, event *types.Event) error
	publicEventsFn func(ctx context.Context) ([]*types.EventWithCreator, error)
	upcomingFn     func(ctx context.Context, limit uint64, after time.Time) ([]*types.EventWithCreator, error)
	activeCountFn  func(ctx context.Context) (int64, error)
}

func (f *fakeEventStore) Create(ctx context.Context, event *types.Event) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	event.ID = utils.NanoID()
	event.CreatedAt = time.Now()
	if event.Category == "" {
		event.Category = types.EventCategoryCommunity
	}
	event.IsPublic = true
	event.IsActive = true
	return nil
}

func (f *fakeEventStore) PublicEvents(ctx context.Context) ([]*types.EventWithCreator, error) {
	if f.publicEventsFn != nil {
		return f.publicEventsFn(ctx)
	}
	return []*types.EventWithCreator{}, nil
}

func (f *fakeEventStore) Upcoming(ctx context.Context, limit uint64, after time.Time) ([]*types.EventWithCreator, error) {
	if f.upcomingFn != nil {
		return f.upcomingFn(ctx, limit, after)
	}
	return []*types.EventWithCreator{}, nil
}

func (f *fakeEventStore) ActiveCount(ctx context.Context) (int64, error) {
	if f.activeCountFn != nil {
		return f.activeCountFn(ctx)
	}
	return 0, nil
}

type fakeDonationStore struct {
	completedCountFn       func(ctx context.Context) (int64, error)
	completedAmountCentsFn func(ctx context.Context) (int64, error)
	recentCompletedFn      func(ctx context.Context, limit uint64) ([]*types.Donation, error)
}

func (f *fakeDonationStore) CompletedCount(ctx context.Context) (int64, error) {
	if f.completedCountFn != nil {
		return f.completedCountFn(ctx)
	}
	return 0, nil
}

func (f *fakeDonationStore) CompletedAmountCents(ctx context.Context) (int64, error) {
	if f.completedAmountCentsFn != nil {
		return f.completedAmountCentsFn(ctx)
	}
	return 0, nil
}

func (f *fakeDonationStore) RecentCompleted(ctx context.Context, limit uint64) ([]*types.Donation, error) {
	if f.recentCompletedFn != nil {
		return f.recentCompletedFn(ctx, limit)
	}
	return []*types.Donation{}, nil
}

type fakeUserStore struct {
	userByEmailFn func(ctx context.Context, email string) (*types.User, error)
}

func (f *fakeUserStore) UserByEmail(ctx context.Context, email string) (*types.User, error) {
	if f.userByEmailFn != nil {
		return f.userByEmailFn(ctx, email)
	}
	return nil, types.ErrUserNotFound
}

type testEnv struct {
	service    *Service
	contacts   *fakeContactStore
	volunteers *fakeVolunteerStore
	events     *fakeEventStore
	donations  *fakeDonationStore
	users      *fakeUserStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		contacts:   &fakeContactStore{},
		volunteers: &fakeVolunteerStore{},
		events:     &fakeEventStore{},
		donations:  &fakeDonationStore{},
		users:      &fakeUserStore{},
	}

	config := &types.Config{
		Environment:       "test",
		ServerPort:        0,
		ReadTimeoutSec:    5,
		WriteTimeoutSec:   5,
		CookieName:        "caresmv_session",
		SessionMaxAgeSec:  3600,
		CookieHashKey:     randomKey(t, 32),
		CookieBlockKey:    randomKey(t, 32),
		SessionSigningKey: randomKey(t, 32),
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	service, err := New(config, logger, env.contacts, env.volunteers, env.events, env.donations, env.users)
	require.NoError(t, err)
	env.service = service

	return env
}

func randomKey(t *testing.T, n int) string {
	t.Helper()

	key := make([]byte, n)
	_, err := rand.Read(key)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(key)
}

// adminSessionCookie mints a valid admin session for request fixtures.
func (env *testEnv) adminSessionCookie(t *testing.T) *http.Cookie {
	t.Helper()

	encrypted, err := env.service.issueSession(&types.User{
		ID:    "admin-id",
		Email: "admin@example.com",
		Role:  types.UserRoleAdmin,
	})
	require.NoError(t, err)

	return &http.Cookie{Name: env.service.config.CookieName, Value: encrypted}
}
