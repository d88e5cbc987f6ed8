package repository

import (
	"context"
	"fmt"
	"time"

	"shop-loyalty/internal/data/entity"
	"shop-loyalty/pkg/database"
	"shop-loyalty/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type LoyaltyRepository interface {
	// ApplyStamp increments the customer's points by one and, when the new
	// total sits exactly on a reward milestone, appends one reward. Both
	// writes happen in a single transaction: the row lock taken by the
	// UPDATE serializes concurrent stamps for the same customer, so a
	// milestone crossing grants exactly one reward.
	ApplyStamp(ctx context.Context, customerID, stampedBy uuid.UUID) (int, *entity.Reward, error)

	// RedeemLatest removes and returns the most recently earned reward.
	// Returns nil when the customer has no rewards.
	RedeemLatest(ctx context.Context, customerID uuid.UUID) (*entity.Reward, error)

	FindRewards(ctx context.Context, customerID uuid.UUID) ([]*entity.Reward, error)
	ActivityByDay(ctx context.Context, days int) ([]*entity.DailyActivity, error)
}

type loyaltyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLoyaltyRepository(db database.PgxIface, log *zap.Logger) LoyaltyRepository {
	return &loyaltyRepository{
		db:  db,
		log: log.With(zap.String("repository", "loyalty")),
	}
}

func (r *loyaltyRepository) ApplyStamp(ctx context.Context, customerID, stampedBy uuid.UUID) (int, *entity.Reward, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin stamp transaction", zap.Error(err))
		return 0, nil, fmt.Errorf("begin stamp tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Locks the customer row until commit
	query := `
		UPDATE users
		SET points = points + 1, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING points
	`

	var points int
	err = tx.QueryRow(ctx, query, customerID).Scan(&points)
	if err == pgx.ErrNoRows {
		return 0, nil, utils.ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to increment points",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return 0, nil, fmt.Errorf("increment points for %s: %w", customerID.String(), err)
	}

	now := time.Now()

	var reward *entity.Reward
	if entity.MilestoneReached(points) {
		reward = &entity.Reward{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			UserID:    customerID,
			Name:      utils.RewardName(points),
			Milestone: points,
			EarnedOn:  now,
		}

		insertReward := `
			INSERT INTO rewards (id, user_id, name, milestone, earned_on, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING position
		`
		err = tx.QueryRow(ctx, insertReward,
			reward.ID,
			reward.UserID,
			reward.Name,
			reward.Milestone,
			reward.EarnedOn,
			reward.CreatedAt,
		).Scan(&reward.Position)
		if err != nil {
			r.log.Error("Failed to insert reward",
				zap.Error(err),
				zap.String("customer_id", customerID.String()),
				zap.Int("milestone", points),
			)
			return 0, nil, fmt.Errorf("insert reward for %s: %w", customerID.String(), err)
		}
	}

	insertEvent := `
		INSERT INTO stamp_events (id, user_id, stamped_by, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.Exec(ctx, insertEvent, uuid.New(), customerID, stampedBy, now); err != nil {
		r.log.Error("Failed to record stamp event",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return 0, nil, fmt.Errorf("record stamp event for %s: %w", customerID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit stamp transaction", zap.Error(err))
		return 0, nil, fmt.Errorf("commit stamp tx: %w", err)
	}

	return points, reward, nil
}

func (r *loyaltyRepository) RedeemLatest(ctx context.Context, customerID uuid.UUID) (*entity.Reward, error) {
	// Newest reward first (LIFO). Single statement keeps pick-and-delete atomic.
	query := `
		DELETE FROM rewards
		WHERE id = (
			SELECT id FROM rewards
			WHERE user_id = $1
			ORDER BY position DESC
			LIMIT 1
			FOR UPDATE
		)
		RETURNING id, user_id, name, milestone, earned_on, position, created_at
	`

	var reward entity.Reward
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&reward.ID,
		&reward.UserID,
		&reward.Name,
		&reward.Milestone,
		&reward.EarnedOn,
		&reward.Position,
		&reward.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to redeem reward",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("redeem reward for %s: %w", customerID.String(), err)
	}

	return &reward, nil
}

func (r *loyaltyRepository) FindRewards(ctx context.Context, customerID uuid.UUID) ([]*entity.Reward, error) {
	query := `
		SELECT id, user_id, name, milestone, earned_on, position, created_at
		FROM rewards
		WHERE user_id = $1
		ORDER BY position ASC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to get rewards",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find rewards for %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	var rewards []*entity.Reward
	for rows.Next() {
		var reward entity.Reward
		err := rows.Scan(
			&reward.ID,
			&reward.UserID,
			&reward.Name,
			&reward.Milestone,
			&reward.EarnedOn,
			&reward.Position,
			&reward.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan reward row", zap.Error(err))
			return nil, fmt.Errorf("scan reward row: %w", err)
		}
		rewards = append(rewards, &reward)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate rewards rows: %w", err)
	}

	return rewards, nil
}

func (r *loyaltyRepository) ActivityByDay(ctx context.Context, days int) ([]*entity.DailyActivity, error) {
	query := `
		SELECT to_char(created_at::date, 'Dy') AS day, COUNT(*) AS stamps
		FROM stamp_events
		WHERE created_at >= NOW() - make_interval(days => $1)
		GROUP BY created_at::date
		ORDER BY MIN(created_at::date)
	`

	rows, err := r.db.Query(ctx, query, days)
	if err != nil {
		r.log.Error("Failed to get stamp activity",
			zap.Error(err),
			zap.Int("days", days),
		)
		return nil, fmt.Errorf("stamp activity last %d days: %w", days, err)
	}
	defer rows.Close()

	var activity []*entity.DailyActivity
	for rows.Next() {
		var day entity.DailyActivity
		if err := rows.Scan(&day.Day, &day.Stamps); err != nil {
			r.log.Error("Failed to scan activity row", zap.Error(err))
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		activity = append(activity, &day)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate activity rows: %w", err)
	}

	return activity, nil
}
