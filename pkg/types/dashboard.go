package types

// DashboardStats is the admin dashboard aggregation. Each field reflects an
// independent read; no cross-field consistency is guaranteed.
type DashboardStats struct {
	TotalDonations           int64                `json:"totalDonations"`
	TotalDonationAmountCents int64                `json:"totalDonationAmountCents"`
	TotalVolunteers          int64                `json:"totalVolunteers"`
	TotalEvents              int64                `json:"totalEvents"`
	TotalContacts            int64                `json:"totalContacts"`
	UrgentContacts           int64                `json:"urgentContacts"`
	RecentDonations          []*Donation          `json:"recentDonations"`
	RecentVolunteers         []*Volunteer         `json:"recentVolunteers"`
	RecentContacts           []*ContactSubmission `json:"recentContacts"`
	UpcomingEvents           []*EventWithCreator  `json:"upcomingEvents"`
}
