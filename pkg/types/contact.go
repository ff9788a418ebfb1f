package types

import "time"

type ContactStatus string

const (
	ContactStatusNew        ContactStatus = "NEW"
	ContactStatusInProgress ContactStatus = "IN_PROGRESS"
	ContactStatusResolved   ContactStatus = "RESOLVED"
	ContactStatusClosed     ContactStatus = "CLOSED"
)

type ContactSubmission struct {
	ID        string        `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	Email     string        `db:"email" json:"email"`
	Phone     *string       `db:"phone" json:"phone,omitempty"`
	Subject   *string       `db:"subject" json:"subject,omitempty"`
	Message   string        `db:"message" json:"message"`
	IsUrgent  bool          `db:"is_urgent" json:"isUrgent"`
	Status    ContactStatus `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
}
