package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reward is one earned, redeemable benefit. It exists whole or not at all;
// redemption removes the row.
type Reward struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Milestone int       `db:"milestone"`
	EarnedOn  time.Time `db:"earned_on"`
	Position  int64     `db:"position"`
}

// RewardMilestone is the points interval at which a stamp grants a reward.
const RewardMilestone = 10

// MilestoneReached reports whether a points total sits exactly on a
// reward boundary.
func MilestoneReached(points int) bool {
	return points > 0 && points%RewardMilestone == 0
}
