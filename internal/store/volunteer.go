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

const volunteerTableName = "caresmv.volunteers"

var volunteerColumns = utils.StructTagValues(types.Volunteer{})

type VolunteerRepository struct {
	pool *pgxpool.Pool
}

func NewVolunteerRepository(pool *pgxpool.Pool) *VolunteerRepository {
	return &VolunteerRepository{pool: pool}
}

// Create inserts a volunteer. The unique index on email is the authoritative
// duplicate guard; a violation surfaces as types.ErrVolunteerExists.
func (r *VolunteerRepository) Create(ctx context.Context, volunteer *types.Volunteer) error {

	volunteer.ID = utils.NanoID()
	volunteer.CreatedAt = time.Now()
	volunteer.IsActive = true

	query, args, err := psql().
		Insert(volunteerTableName).
		SetMap(utils.StructToMap(volunteer)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert volunteer query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return types.ErrVolunteerExists
		}
		return fmt.Errorf("failed to create volunteer: %w", err)
	}

	return nil
}

// ExistsByEmail is a fast-path check ahead of Create. It is not a guard
// against concurrent duplicates; the unique index is.
func (r *VolunteerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {

	query, args, err := psql().
		Select("COUNT(*)").
		From(volunteerTableName).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to generate volunteer email query: %w", err)
	}

	var count int64
	if err := pgxscan.Get(ctx, r.pool, &count, query, args...); err != nil {
		return false, fmt.Errorf("failed to check volunteer email: %w", err)
	}

	return count > 0, nil
}

func (r *VolunteerRepository) ActiveVolunteers(ctx context.Context) ([]*types.Volunteer, error) {

	query, args, err := psql().
		Select(volunteerColumns...).
		From(volunteerTableName).
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate active volunteers query: %w", err)
	}

	volunteers := make([]*types.Volunteer, 0)
	if err := pgxscan.Select(ctx, r.pool, &volunteers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch active volunteers: %w", err)
	}

	return volunteers, nil
}

func (r *VolunteerRepository) RecentActive(ctx context.Context, limit uint64) ([]*types.Volunteer, error) {

	query, args, err := psql().
		Select(volunteerColumns...).
		From(volunteerTableName).
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate recent volunteers query: %w", err)
	}

	volunteers := make([]*types.Volunteer, 0)
	if err := pgxscan.Select(ctx, r.pool, &volunteers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch recent volunteers: %w", err)
	}

	return volunteers, nil
}

func (r *VolunteerRepository) ActiveCount(ctx context.Context) (int64, error) {

	query, args, err := psql().
		Select("COUNT(*)").
		From(volunteerTableName).
		Where(sq.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate volunteer count query: %w", err)
	}

	var count int64
	if err := pgxscan.Get(ctx, r.pool, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count active volunteers: %w", err)
	}

	return count, nil
}
