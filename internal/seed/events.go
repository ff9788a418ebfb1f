package seed

import (
	"context"
	"fmt"
	"time"

	"caresmv/internal/utils"
	"caresmv/pkg/types"
)

var sampleEvents = []*types.Event{
	{
		Title:             "Community Food Distribution",
		Description:       utils.StringPtr("Monthly food distribution event helping families in need. Volunteers will help sort, pack, and distribute food items to community members."),
		Location:          utils.StringPtr("Haverhill Community Center"),
		Address:           utils.StringPtr("35 Winter St, Haverhill, MA 01830"),
		StartDate:         time.Date(2024, time.December, 15, 9, 0, 0, 0, time.UTC),
		EndDate:           utils.TimePtr(time.Date(2024, time.December, 15, 12, 0, 0, 0, time.UTC)),
		StartTime:         utils.StringPtr("9:00 AM"),
		EndTime:           utils.StringPtr("12:00 PM"),
		Category:          types.EventCategoryFoodDistribution,
		MaxVolunteers:     utils.IntPtr(20),
		CurrentVolunteers: 5,
		ImageURL:          utils.StringPtr("https://thumbs.dreamstime.com/b/volunteers-share-food-to-fortunate-multiethnic-voluntary-individuals-distribute-donated-food-extending-helping-hand-to-311455682.jpg"),
		ContactEmail:      utils.StringPtr("events@411caresmerrimackvalley.org"),
		ContactPhone:      utils.StringPtr("(978) 857-7696"),
		Requirements:      utils.StringPtr("Volunteers should be able to lift up to 30 lbs. All volunteers welcome!"),
	},
	{
		Title:             "Holiday Toy Drive Sorting",
		Description:       utils.StringPtr("Help us sort and organize donated toys for local families. This is a great event for families to volunteer together."),
		Location:          utils.StringPtr("Bradford Elementary School"),
		Address:           utils.StringPtr("5 Chadwick St, Bradford, MA 01835"),
		StartDate:         time.Date(2024, time.December, 20, 10, 0, 0, 0, time.UTC),
		EndDate:           utils.TimePtr(time.Date(2024, time.December, 20, 14, 0, 0, 0, time.UTC)),
		StartTime:         utils.StringPtr("10:00 AM"),
		EndTime:           utils.StringPtr("2:00 PM"),
		Category:          types.EventCategorySeasonal,
		MaxVolunteers:     utils.IntPtr(15),
		CurrentVolunteers: 3,
		ImageURL:          utils.StringPtr("https://d12m9erqbesehq.cloudfront.net/wp-content/uploads/sites/2/2024/05/20003908/Provide-Support.jpg"),
		ContactEmail:      utils.StringPtr("events@411caresmerrimackvalley.org"),
		ContactPhone:      utils.StringPtr("(978) 857-7696"),
		Requirements:      utils.StringPtr("Family-friendly event. Children under 12 must be supervised by an adult."),
	},
	{
		Title:             "New Volunteer Orientation",
		Description:       utils.StringPtr("Learn about 411 Cares mission, volunteer opportunities, and meet other community helpers. Light refreshments provided."),
		Location:          utils.StringPtr("411 Cares Office"),
		Address:           utils.StringPtr("Haverhill, MA (address provided upon registration)"),
		StartDate:         time.Date(2024, time.December, 10, 18, 0, 0, 0, time.UTC),
		EndDate:           utils.TimePtr(time.Date(2024, time.December, 10, 19, 30, 0, 0, time.UTC)),
		StartTime:         utils.StringPtr("6:00 PM"),
		EndTime:           utils.StringPtr("7:30 PM"),
		Category:          types.EventCategoryVolunteerTraining,
		MaxVolunteers:     utils.IntPtr(25),
		CurrentVolunteers: 8,
		ImageURL:          utils.StringPtr("https://media.istockphoto.com/id/1496112689/photo/young-multiracial-group-stacking-hands-together-happy-diverse-friends-united-at-community.jpg?s=612x612&w=0&k=20&c=ARk3sEhEElK3M27oN-VcVNtAEULHJzZetRihjLsXuu8="),
		ContactEmail:      utils.StringPtr("volunteer@411caresmerrimackvalley.org"),
		ContactPhone:      utils.StringPtr("(978) 857-7696"),
		Requirements:      utils.StringPtr("No experience necessary. Bring a positive attitude and willingness to help!"),
	},
}

func (s *Seeder) SeedEvents(ctx context.Context) error {
	for _, sample := range sampleEvents {
		exists, err := s.events.ExistsByTitle(ctx, sample.Title)
		if err != nil {
			return fmt.Errorf("failed to check for existing event %q: %w", sample.Title, err)
		}
		if exists {
			continue
		}

		event := *sample
		event.CreatedByID = AdminUserID

		if err := s.events.Create(ctx, &event); err != nil {
			return fmt.Errorf("failed to create event %q: %w", sample.Title, err)
		}

		s.debug(&event)
	}

	return nil
}
