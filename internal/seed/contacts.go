package seed

import (
	"context"
	"fmt"

	"caresmv/internal/utils"
	"caresmv/pkg/types"
)

var sampleContacts = []*types.ContactSubmission{
	{
		Name:    "Jennifer Smith",
		Email:   "jennifer.smith@email.com",
		Phone:   utils.StringPtr("(978) 345-6789"),
		Subject: utils.StringPtr("Volunteer Inquiry"),
		Message: "Hi, I'm interested in volunteering for food distribution events. What is the next step to get involved?",
		Status:  types.ContactStatusNew,
	},
	{
		Name:    "Robert Chen",
		Email:   "robert.chen@email.com",
		Subject: utils.StringPtr("Donation Question"),
		Message: "I would like to make a monthly donation. Do you have any recurring donation options?",
		Status:  types.ContactStatusNew,
	},
}

// SeedContacts only runs against an empty table. Contact submissions have no
// natural unique key to guard on.
func (s *Seeder) SeedContacts(ctx context.Context) error {
	count, err := s.contacts.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count contact submissions: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, sample := range sampleContacts {
		submission := *sample
		if err := s.contacts.Create(ctx, &submission); err != nil {
			return fmt.Errorf("failed to create contact submission from %s: %w", sample.Email, err)
		}

		s.debug(&submission)
	}

	return nil
}
