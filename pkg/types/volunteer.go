package types

import "time"

type Volunteer struct {
	ID               string    `db:"id" json:"id"`
	FirstName        string    `db:"first_name" json:"firstName"`
	LastName         string    `db:"last_name" json:"lastName"`
	Email            string    `db:"email" json:"email"`
	Phone            *string   `db:"phone" json:"phone,omitempty"`
	Address          *string   `db:"address" json:"address,omitempty"`
	City             *string   `db:"city" json:"city,omitempty"`
	ZipCode          *string   `db:"zip_code" json:"zipCode,omitempty"`
	Skills           *string   `db:"skills" json:"skills,omitempty"`
	Availability     *string   `db:"availability" json:"availability,omitempty"`
	Interests        *string   `db:"interests" json:"interests,omitempty"`
	Experience       *string   `db:"experience" json:"experience,omitempty"`
	EmergencyContact *string   `db:"emergency_contact" json:"emergencyContact,omitempty"`
	EmergencyPhone   *string   `db:"emergency_phone" json:"emergencyPhone,omitempty"`
	BackgroundCheck  bool      `db:"background_check" json:"backgroundCheck"`
	IsActive         bool      `db:"is_active" json:"isActive"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
}
