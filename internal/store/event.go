package store

import (
	"context"
	"fmt"
	"time"

	"caresmv/internal/utils"
	"caresmv/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	eventTableName = "caresmv.events"
	userTableName  = "caresmv.users"
)

var (
	eventColumns = utils.StructTagValues(types.Event{})

	// Joined creator columns aliased into the nested created_by struct.
	creatorColumns = []string{
		`u.first_name AS "created_by.first_name"`,
		`u.last_name AS "created_by.last_name"`,
		`u.email AS "created_by.email"`,
	}
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Create(ctx context.Context, event *types.Event) error {

	event.ID = utils.NanoID()
	event.CreatedAt = time.Now()
	if event.Category == "" {
		event.Category = types.EventCategoryCommunity
	}
	event.IsPublic = true
	event.IsActive = true

	query, args, err := psql().
		Insert(eventTableName).
		SetMap(utils.StructToMap(event)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert event query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create event")
}

// PublicEvents returns active, public events in start-date order, each
// joined with a summary of its creator.
func (r *EventRepository) PublicEvents(ctx context.Context) ([]*types.EventWithCreator, error) {

	columns := utils.PrefixSliceOfStrings("e", eventColumns)
	columns = append(columns, creatorColumns...)

	query, args, err := psql().
		Select(columns...).
		From(eventTableName + " e").
		Join(userTableName + " u ON u.id = e.created_by_id").
		Where(sq.Eq{"e.is_active": true, "e.is_public": true}).
		OrderBy("e.start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate public events query: %w", err)
	}

	events := make([]*types.EventWithCreator, 0)
	if err := pgxscan.Select(ctx, r.pool, &events, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch public events: %w", err)
	}

	return events, nil
}

// Upcoming returns the soonest active, public events starting at or after
// the given instant.
func (r *EventRepository) Upcoming(ctx context.Context, limit uint64, after time.Time) ([]*types.EventWithCreator, error) {

	columns := utils.PrefixSliceOfStrings("e", eventColumns)
	columns = append(columns, creatorColumns...)

	query, args, err := psql().
		Select(columns...).
		From(eventTableName + " e").
		Join(userTableName + " u ON u.id = e.created_by_id").
		Where(sq.Eq{"e.is_active": true, "e.is_public": true}).
		Where(sq.GtOrEq{"e.start_date": after}).
		OrderBy("e.start_date ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate upcoming events query: %w", err)
	}

	events := make([]*types.EventWithCreator, 0)
	if err := pgxscan.Select(ctx, r.pool, &events, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming events: %w", err)
	}

	return events, nil
}

// ExistsByTitle is used by the seed command to keep reseeding idempotent.
func (r *EventRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {

	query, args, err := psql().
		Select("COUNT(*)").
		From(eventTableName).
		Where(sq.Eq{"title": title}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to generate event title query: %w", err)
	}

	var count int64
	if err := pgxscan.Get(ctx, r.pool, &count, query, args...); err != nil {
		return false, fmt.Errorf("failed to check event title: %w", err)
	}

	return count > 0, nil
}

func (r *EventRepository) ActiveCount(ctx context.Context) (int64, error) {

	query, args, err := psql().
		Select("COUNT(*)").
		From(eventTableName).
		Where(sq.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate event count query: %w", err)
	}

	var count int64
	if err := pgxscan.Get(ctx, r.pool, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count active events: %w", err)
	}

	return count, nil
}
