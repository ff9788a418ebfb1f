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

const donationTableName = "caresmv.donations"

var donationColumns = utils.StructTagValues(types.Donation{})

type DonationRepository struct {
	pool *pgxpool.Pool
}

func NewDonationRepository(pool *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{pool: pool}
}

// Create inserts a donation record. The live payment flow is disabled, so
// this is only reached by the seed command.
func (r *DonationRepository) Create(ctx context.Context, donation *types.Donation) error {

	donation.ID = utils.NanoID()
	donation.CreatedAt = time.Now()

	query, args, err := psql().
		Insert(donationTableName).
		SetMap(utils.StructToMap(donation)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert donation query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create donation")
}

// ExistsByStripePaymentID is used by the seed command to keep reseeding
// idempotent.
func (r *DonationRepository) ExistsByStripePaymentID(ctx context.Context, stripePaymentID string) (bool, error) {

	query, args, err := psql().
		Select("COUNT(*)").
		From(donationTableName).
		Where(sq.Eq{"stripe_payment_id": stripePaymentID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to generate donation payment id query: %w", err)
	}

	var count int64
	if err := pgxscan.Get(ctx, r.pool, &count, query, args...); err != nil {
		return false, fmt.Errorf("failed to check donation payment id: %w", err)
	}

	return count > 0, nil
}

func (r *DonationRepository) CompletedCount(ctx context.Context) (int64, error) {

	query, args, err := psql().
		Select("COUNT(*)").
		From(donationTableName).
		Where(sq.Eq{"status": types.PaymentStatusCompleted}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate donation count query: %w", err)
	}

	var count int64
	if err := pgxscan.Get(ctx, r.pool, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count completed donations: %w", err)
	}

	return count, nil
}

// CompletedAmountCents sums the amounts of completed donations only.
func (r *DonationRepository) CompletedAmountCents(ctx context.Context) (int64, error) {

	query, args, err := psql().
		Select("COALESCE(SUM(amount_cents), 0)").
		From(donationTableName).
		Where(sq.Eq{"status": types.PaymentStatusCompleted}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate donation sum query: %w", err)
	}

	var total int64
	if err := pgxscan.Get(ctx, r.pool, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to sum completed donations: %w", err)
	}

	return total, nil
}

func (r *DonationRepository) RecentCompleted(ctx context.Context, limit uint64) ([]*types.Donation, error) {

	query, args, err := psql().
		Select(donationColumns...).
		From(donationTableName).
		Where(sq.Eq{"status": types.PaymentStatusCompleted}).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate recent donations query: %w", err)
	}

	donations := make([]*types.Donation, 0)
	if err := pgxscan.Select(ctx, r.pool, &donations, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch recent donations: %w", err)
	}

	return donations, nil
}
