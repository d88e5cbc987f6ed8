package usecase

import (
	"context"
	"fmt"

	"shop-loyalty/internal/data/entity"
	"shop-loyalty/internal/data/repository"
	"shop-loyalty/internal/dto/response"
	"shop-loyalty/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoyaltyService maintains the point/reward invariant for customer
// accounts. Role gating (employee-only stamp and redeem) is enforced by
// the auth middleware, not here.
type LoyaltyService interface {
	FindCustomer(ctx context.Context, customerID string) (*response.CustomerResponse, error)
	ApplyStamp(ctx context.Context, employeeID uuid.UUID, customerID string) (*response.StampResponse, error)
	RedeemReward(ctx context.Context, customerID string) (*response.RewardResponse, error)
	GetLoyalty(ctx context.Context, customerID uuid.UUID) (*response.LoyaltyResponse, error)
	GetActivity(ctx context.Context) ([]*response.ActivityResponse, error)
}

type loyaltyService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLoyaltyService(repo *repository.Repository, log *zap.Logger) LoyaltyService {
	return &loyaltyService{
		repo: repo,
		log:  log.With(zap.String("service", "loyalty")),
	}
}

func (s *loyaltyService) FindCustomer(ctx context.Context, customerID string) (*response.CustomerResponse, error) {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	rewards, err := s.repo.Loyalty.FindRewards(ctx, customer.ID)
	if err != nil {
		s.log.Error("Failed to load rewards", zap.Error(err), zap.String("customer_id", customerID))
		return nil, fmt.Errorf("load rewards: %w", err)
	}

	return &response.CustomerResponse{
		ID:      customer.ID.String(),
		Name:    customer.Name,
		Email:   customer.Email,
		Points:  customer.Points,
		Rewards: response.RewardsToResponse(rewards),
	}, nil
}

func (s *loyaltyService) ApplyStamp(ctx context.Context, employeeID uuid.UUID, customerID string) (*response.StampResponse, error) {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	points, reward, err := s.repo.Loyalty.ApplyStamp(ctx, customer.ID, employeeID)
	if err != nil {
		s.log.Error("Failed to apply stamp",
			zap.Error(err),
			zap.String("customer_id", customerID),
			zap.String("employee_id", employeeID.String()),
		)
		return nil, fmt.Errorf("apply stamp: %w", err)
	}

	resp := &response.StampResponse{Points: points}
	if reward != nil {
		r := response.RewardToResponse(reward)
		resp.Reward = &r
		s.log.Info("Reward earned",
			zap.String("customer_id", customerID),
			zap.Int("milestone", reward.Milestone),
		)
	}

	s.log.Info("Stamp applied",
		zap.String("customer_id", customerID),
		zap.String("employee_id", employeeID.String()),
		zap.Int("points", points),
	)

	return resp, nil
}

func (s *loyaltyService) RedeemReward(ctx context.Context, customerID string) (*response.RewardResponse, error) {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	// Newest-earned reward goes first
	reward, err := s.repo.Loyalty.RedeemLatest(ctx, customer.ID)
	if err != nil {
		s.log.Error("Failed to redeem reward", zap.Error(err), zap.String("customer_id", customerID))
		return nil, fmt.Errorf("redeem reward: %w", err)
	}
	if reward == nil {
		return nil, utils.ErrNoRewardsAvailable
	}

	s.log.Info("Reward redeemed",
		zap.String("customer_id", customerID),
		zap.String("reward_id", reward.ID.String()),
		zap.String("reward", reward.Name),
	)

	resp := response.RewardToResponse(reward)
	return &resp, nil
}

func (s *loyaltyService) GetLoyalty(ctx context.Context, customerID uuid.UUID) (*response.LoyaltyResponse, error) {
	user, err := s.repo.User.FindByID(ctx, customerID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", customerID.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, utils.ErrNotFound
	}
	if user.Role != entity.RoleCustomer {
		return nil, utils.ErrWrongRole
	}

	rewards, err := s.repo.Loyalty.FindRewards(ctx, customerID)
	if err != nil {
		s.log.Error("Failed to load rewards", zap.Error(err), zap.String("user_id", customerID.String()))
		return nil, fmt.Errorf("load rewards: %w", err)
	}

	return &response.LoyaltyResponse{
		Points:  user.Points,
		Rewards: response.RewardsToResponse(rewards),
	}, nil
}

func (s *loyaltyService) GetActivity(ctx context.Context) ([]*response.ActivityResponse, error) {
	activity, err := s.repo.Loyalty.ActivityByDay(ctx, 7)
	if err != nil {
		s.log.Error("Failed to load stamp activity", zap.Error(err))
		return nil, fmt.Errorf("load activity: %w", err)
	}

	out := make([]*response.ActivityResponse, 0, len(activity))
	for _, day := range activity {
		out = append(out, &response.ActivityResponse{Day: day.Day, Stamps: day.Stamps})
	}
	return out, nil
}

// findCustomer resolves an identifier to a customer account. Absent records
// and non-customer roles are distinguishable outcomes so the scanner UI can
// render a precise message.
func (s *loyaltyService) findCustomer(ctx context.Context, customerID string) (*entity.User, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer ID", utils.ErrValidation)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find customer", zap.Error(err), zap.String("customer_id", customerID))
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: customer not found", utils.ErrNotFound)
	}
	if user.Role != entity.RoleCustomer {
		return nil, fmt.Errorf("%w: stamps apply to customer accounts only", utils.ErrWrongRole)
	}

	return user, nil
}
