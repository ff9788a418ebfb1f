package seed

import (
	"caresmv/internal/store"

	"github.com/k0kubun/pp/v3"
)

// Seeder writes the initial admin accounts and sample content. Every
// seeding step is idempotent so the command can be re-run safely.
type Seeder struct {
	users      *store.UserRepository
	events     *store.EventRepository
	volunteers *store.VolunteerRepository
	contacts   *store.ContactRepository
	donations  *store.DonationRepository
	verbose    bool
}

func New(
	users *store.UserRepository,
	events *store.EventRepository,
	volunteers *store.VolunteerRepository,
	contacts *store.ContactRepository,
	donations *store.DonationRepository,
	verbose bool,
) *Seeder {
	return &Seeder{
		users:      users,
		events:     events,
		volunteers: volunteers,
		contacts:   contacts,
		donations:  donations,
		verbose:    verbose,
	}
}

func (s *Seeder) debug(v any) {
	if s.verbose {
		pp.Println(v)
	}
}
