package types

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

type Donation struct {
	ID              string        `db:"id" json:"id"`
	StripePaymentID string        `db:"stripe_payment_id" json:"stripePaymentId"`
	AmountCents     int64         `db:"amount_cents" json:"amountCents"`
	DonorName       *string       `db:"donor_name" json:"donorName,omitempty"`
	DonorEmail      string        `db:"donor_email" json:"donorEmail"`
	Message         *string       `db:"message" json:"message,omitempty"`
	IsAnonymous     bool          `db:"is_anonymous" json:"isAnonymous"`
	Status          PaymentStatus `db:"status" json:"status"`
	CreatedAt       time.Time     `db:"created_at" json:"createdAt"`
}
