package response

import "shop-loyalty/internal/data/entity"

type RewardResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

func RewardToResponse(reward *entity.Reward) RewardResponse {
	return RewardResponse{
		ID:   reward.ID.String(),
		Name: reward.Name,
		Date: reward.EarnedOn.Format("2006-01-02"),
	}
}

func RewardsToResponse(rewards []*entity.Reward) []RewardResponse {
	out := make([]RewardResponse, 0, len(rewards))
	for _, reward := range rewards {
		out = append(out, RewardToResponse(reward))
	}
	return out
}

// LoyaltyResponse is the customer dashboard view: current points plus
// rewards in earn order.
type LoyaltyResponse struct {
	Points  int              `json:"points"`
	Rewards []RewardResponse `json:"rewards"`
}

// CustomerResponse is what the scanner shows after a lookup.
type CustomerResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	Points  int              `json:"points"`
	Rewards []RewardResponse `json:"rewards"`
}

// StampResponse reports the updated points count and, on a milestone
// crossing, the reward just earned.
type StampResponse struct {
	Points int             `json:"points"`
	Reward *RewardResponse `json:"reward,omitempty"`
}

type ActivityResponse struct {
	Day    string `json:"day"`
	Stamps int    `json:"stamps"`
}
