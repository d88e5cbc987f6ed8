package usecase

import (
	"context"
	"sort"
	"time"

	"shop-loyalty/internal/data/entity"
	"shop-loyalty/internal/data/repository"
	"shop-loyalty/pkg/utils"

	"github.com/google/uuid"
)

// In-memory repository fakes. They reproduce the contracts documented on
// the repository interfaces (nil for absent rows, stamp/reward atomicity)
// so service tests exercise real service logic against predictable state.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
	err   error
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	m := make(map[uuid.UUID]*entity.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.err != nil {
		return f.err
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if f.err != nil {
		return f.err
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	delete(f.users, id)
	return nil
}

type fakeSessionRepo struct {
	created []*entity.Session
	revoked []uuid.UUID
	err     error
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, session)
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.revoked = append(f.revoked, userID)
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(_ context.Context) error {
	return f.err
}

type fakeLoyaltyRepo struct {
	users   *fakeUserRepo
	rewards map[uuid.UUID][]*entity.Reward
	nextPos int64
	err     error
}

func newFakeLoyaltyRepo(users *fakeUserRepo) *fakeLoyaltyRepo {
	return &fakeLoyaltyRepo{
		users:   users,
		rewards: make(map[uuid.UUID][]*entity.Reward),
	}
}

func (f *fakeLoyaltyRepo) ApplyStamp(_ context.Context, customerID, stampedBy uuid.UUID) (int, *entity.Reward, error) {
	if f.err != nil {
		return 0, nil, f.err
	}
	user := f.users.users[customerID]
	if user == nil {
		return 0, nil, utils.ErrNotFound
	}
	user.Points++

	var reward *entity.Reward
	if entity.MilestoneReached(user.Points) {
		f.nextPos++
		reward = &entity.Reward{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			UserID:     customerID,
			Name:       utils.RewardName(user.Points),
			Milestone:  user.Points,
			EarnedOn:   time.Now(),
			Position:   f.nextPos,
		}
		f.rewards[customerID] = append(f.rewards[customerID], reward)
	}
	return user.Points, reward, nil
}

func (f *fakeLoyaltyRepo) RedeemLatest(_ context.Context, customerID uuid.UUID) (*entity.Reward, error) {
	if f.err != nil {
		return nil, f.err
	}
	list := f.rewards[customerID]
	if len(list) == 0 {
		return nil, nil
	}
	latest := list[len(list)-1]
	f.rewards[customerID] = list[:len(list)-1]
	return latest, nil
}

func (f *fakeLoyaltyRepo) FindRewards(_ context.Context, customerID uuid.UUID) ([]*entity.Reward, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rewards[customerID], nil
}

func (f *fakeLoyaltyRepo) ActivityByDay(_ context.Context, days int) ([]*entity.DailyActivity, error) {
	if f.err != nil {
		return nil, f.err
	}
	total := 0
	for _, list := range f.rewards {
		total += len(list)
	}
	return []*entity.DailyActivity{{Day: "Mon", Stamps: total}}, nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
	err    error
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if f.err != nil {
		return f.err
	}
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	if offset >= len(f.orders) {
		return nil, nil
	}
	out := f.orders[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeOrderRepo) CountAll(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus) error {
	if f.err != nil {
		return f.err
	}
	for _, o := range f.orders {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return utils.ErrNotFound
}

type fakeCategoryRepo struct {
	categories []*entity.Category
	err        error
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if f.err != nil {
		return f.err
	}
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	if f.err != nil {
		return f.err
	}
	for i, c := range f.categories {
		if c.ID == category.ID {
			f.categories[i] = category
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, c := range f.categories {
		if c.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

type fakeProductRepo struct {
	products []*entity.Product
	err      error
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	f.products = append(f.products, product)
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindByCategory(_ context.Context, categoryID uuid.UUID) ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Product
	for _, p := range f.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	for i, p := range f.products {
		if p.ID == product.ID {
			f.products[i] = product
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

func newTestRepo(users *fakeUserRepo) (*repository.Repository, *fakeSessionRepo, *fakeLoyaltyRepo) {
	sessions := &fakeSessionRepo{}
	loyalty := newFakeLoyaltyRepo(users)
	repo := &repository.Repository{
		User:     users,
		Session:  sessions,
		Loyalty:  loyalty,
		Order:    &fakeOrderRepo{},
		Product:  &fakeProductRepo{},
		Category: &fakeCategoryRepo{},
	}
	return repo, sessions, loyalty
}

func newTestUser(role entity.UserRole, points int) *entity.User {
	now := time.Now()
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:   "Test User",
		Email:  uuid.NewString() + "@example.com",
		Role:   role,
		Points: points,
	}
}
