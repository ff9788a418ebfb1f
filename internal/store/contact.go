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

const contactTableName = "caresmv.contact_submissions"

var contactColumns = utils.StructTagValues(types.ContactSubmission{})

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, submission *types.ContactSubmission) error {

	submission.ID = utils.NanoID()
	submission.CreatedAt = time.Now()
	if submission.Status == "" {
		submission.Status = types.ContactStatusNew
	}

	query, args, err := psql().
		Insert(contactTableName).
		SetMap(utils.StructToMap(submission)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert contact query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create contact submission")
}

func (r *ContactRepository) Latest(ctx context.Context, limit uint64) ([]*types.ContactSubmission, error) {

	query, args, err := psql().
		Select(contactColumns...).
		From(contactTableName).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate latest contacts query: %w", err)
	}

	submissions := make([]*types.ContactSubmission, 0)
	if err := pgxscan.Select(ctx, r.pool, &submissions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch latest contact submissions: %w", err)
	}

	return submissions, nil
}

func (r *ContactRepository) Count(ctx context.Context) (int64, error) {

	query, args, err := psql().
		Select("COUNT(*)").
		From(contactTableName).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate contact count query: %w", err)
	}

	var count int64
	if err := pgxscan.Get(ctx, r.pool, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count contact submissions: %w", err)
	}

	return count, nil
}

// UrgentOpenCount counts urgent submissions that have not been closed.
func (r *ContactRepository) UrgentOpenCount(ctx context.Context) (int64, error) {

	query, args, err := psql().
		Select("COUNT(*)").
		From(contactTableName).
		Where(sq.Eq{"is_urgent": true}).
		Where(sq.NotEq{"status": types.ContactStatusClosed}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate urgent contact count query: %w", err)
	}

	var count int64
	if err := pgxscan.Get(ctx, r.pool, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count urgent contact submissions: %w", err)
	}

	return count, nil
}
