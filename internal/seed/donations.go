package seed

import (
	"context"
	"fmt"

	"caresmv/internal/utils"
	"caresmv/pkg/types"
)

var sampleDonations = []*types.Donation{
	{
		StripePaymentID: "pi_test_1234567890",
		AmountCents:     5000,
		DonorName:       utils.StringPtr("Anonymous Donor"),
		DonorEmail:      "donor1@example.com",
		Message:         utils.StringPtr("Keep up the great work helping our community!"),
		IsAnonymous:     true,
		Status:          types.PaymentStatusCompleted,
	},
	{
		StripePaymentID: "pi_test_2345678901",
		AmountCents:     10000,
		DonorName:       utils.StringPtr("Lisa Thompson"),
		DonorEmail:      "lisa.thompson@email.com",
		Message:         utils.StringPtr("Thank you for all you do for Haverhill families."),
		IsAnonymous:     false,
		Status:          types.PaymentStatusCompleted,
	},
}

func (s *Seeder) SeedDonations(ctx context.Context) error {
	for _, sample := range sampleDonations {
		exists, err := s.donations.ExistsByStripePaymentID(ctx, sample.StripePaymentID)
		if err != nil {
			return fmt.Errorf("failed to check for existing donation %s: %w", sample.StripePaymentID, err)
		}
		if exists {
			continue
		}

		donation := *sample
		if err := s.donations.Create(ctx, &donation); err != nil {
			return fmt.Errorf("failed to create donation %s: %w", sample.StripePaymentID, err)
		}

		s.debug(&donation)
	}

	return nil
}
