package seed

import (
	"context"
	"fmt"

	"caresmv/internal/utils"
	"caresmv/pkg/types"
)

var sampleVolunteers = []*types.Volunteer{
	{
		FirstName:        "Sarah",
		LastName:         "Johnson",
		Email:            "sarah.johnson@email.com",
		Phone:            utils.StringPtr("(978) 123-4567"),
		City:             utils.StringPtr("Haverhill"),
		ZipCode:          utils.StringPtr("01830"),
		Skills:           utils.StringPtr("Event planning, Social media, Customer service"),
		Availability:     utils.StringPtr("Weekends, Thursday evenings"),
		Interests:        utils.StringPtr("Food distribution, Community events"),
		Experience:       utils.StringPtr("Volunteered at local food bank for 2 years"),
		EmergencyContact: utils.StringPtr("Mike Johnson"),
		EmergencyPhone:   utils.StringPtr("(978) 123-4568"),
	},
	{
		FirstName:        "David",
		LastName:         "Martinez",
		Email:            "david.martinez@email.com",
		Phone:            utils.StringPtr("(978) 234-5678"),
		City:             utils.StringPtr("Lawrence"),
		ZipCode:          utils.StringPtr("01841"),
		Skills:           utils.StringPtr("Translation (Spanish), Construction, Driving"),
		Availability:     utils.StringPtr("Flexible schedule"),
		Interests:        utils.StringPtr("Home repairs, Food distribution, Youth programs"),
		Experience:       utils.StringPtr("New to volunteering, eager to help the community"),
		EmergencyContact: utils.StringPtr("Maria Martinez"),
		EmergencyPhone:   utils.StringPtr("(978) 234-5679"),
	},
}

func (s *Seeder) SeedVolunteers(ctx context.Context) error {
	for _, sample := range sampleVolunteers {
		exists, err := s.volunteers.ExistsByEmail(ctx, sample.Email)
		if err != nil {
			return fmt.Errorf("failed to check for existing volunteer %s: %w", sample.Email, err)
		}
		if exists {
			continue
		}

		volunteer := *sample
		if err := s.volunteers.Create(ctx, &volunteer); err != nil {
			return fmt.Errorf("failed to create volunteer %s: %w", sample.Email, err)
		}

		s.debug(&volunteer)
	}

	return nil
}
