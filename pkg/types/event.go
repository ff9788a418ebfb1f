package types

import "time"

type EventCategory string

const (
	EventCategoryFoodDistribution  EventCategory = "FOOD_DISTRIBUTION"
	EventCategoryVolunteerTraining EventCategory = "VOLUNTEER_TRAINING"
	EventCategorySeasonal          EventCategory = "SEASONAL"
	EventCategoryCommunity         EventCategory = "COMMUNITY"
	EventCategoryFundraising       EventCategory = "FUNDRAISING"
	EventCategoryEducational       EventCategory = "EDUCATIONAL"
	EventCategoryOther             EventCategory = "OTHER"
)

type Event struct {
	ID                string        `db:"id" json:"id"`
	Title             string        `db:"title" json:"title"`
	Description       *string       `db:"description" json:"description,omitempty"`
	Location          *string       `db:"location" json:"location,omitempty"`
	Address           *string       `db:"address" json:"address,omitempty"`
	StartDate         time.Time     `db:"start_date" json:"startDate"`
	EndDate           *time.Time    `db:"end_date" json:"endDate,omitempty"`
	StartTime         *string       `db:"start_time" json:"startTime,omitempty"`
	EndTime           *string       `db:"end_time" json:"endTime,omitempty"`
	IsAllDay          bool          `db:"is_all_day" json:"isAllDay"`
	Category          EventCategory `db:"category" json:"category"`
	MaxVolunteers     *int          `db:"max_volunteers" json:"maxVolunteers,omitempty"`
	CurrentVolunteers int           `db:"current_volunteers" json:"currentVolunteers"`
	ImageURL          *string       `db:"image_url" json:"imageUrl,omitempty"`
	ContactEmail      *string       `db:"contact_email" json:"contactEmail,omitempty"`
	ContactPhone      *string       `db:"contact_phone" json:"contactPhone,omitempty"`
	Requirements      *string       `db:"requirements" json:"requirements,omitempty"`
	CreatedByID       string        `db:"created_by_id" json:"createdById"`
	IsPublic          bool          `db:"is_public" json:"isPublic"`
	IsActive          bool          `db:"is_active" json:"isActive"`
	CreatedAt         time.Time     `db:"created_at" json:"createdAt"`
}

// EventWithCreator is an event joined with a summary of its creating user,
// the shape returned by the public events listing.
type EventWithCreator struct {
	Event
	CreatedBy *UserSummary `db:"created_by" json:"createdBy"`
}

// FillStatus labels how full an event is based on the ratio of current to
// maximum volunteers. Events without a maximum have no label.
func (e *Event) FillStatus() string {
	if e.MaxVolunteers == nil || *e.MaxVolunteers <= 0 {
		return ""
	}

	percentage := e.CurrentVolunteers * 100 / *e.MaxVolunteers
	switch {
	case percentage >= 90:
		return "Nearly Full"
	case percentage >= 70:
		return "Filling Up"
	default:
		return "Spots Available"
	}
}

// PartitionEventsByStart splits events into upcoming and past buckets.
// An event whose start date is at or after now counts as upcoming.
func PartitionEventsByStart(events []*EventWithCreator, now time.Time) (upcoming, past []*EventWithCreator) {
	upcoming = make([]*EventWithCreator, 0, len(events))
	past = make([]*EventWithCreator, 0)
	for _, event := range events {
		if event.StartDate.Before(now) {
			past = append(past, event)
			continue
		}
		upcoming = append(upcoming, event)
	}
	return upcoming, past
}
