package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/zaeempppp/telegram-booster/internal/domain/errors"
	"github.com/zaeempppp/telegram-booster/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// AddUser seeds a user with the given role and returns it.
func (s *UserRepositoryStub) AddUser(email, username string, role model.Role) *model.User {
	user := &model.User{ID: s.Next, Email: email, Username: username, Role: role, CreatedAt: time.Now()}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, username, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{ID: s.Next, Email: email, Username: username, PasswordHash: passwordHash, Role: model.RoleUser}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub keeps orders in-memory and honours the quota and
// transition rules the real repository enforces in SQL.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	Orders map[uuid.UUID]*model.Order
	Err    error

	clock time.Time
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[uuid.UUID]*model.Order), clock: time.Unix(1000, 0)}
}

// CreatePending inserts a pending order while holding the quota.
func (s *OrderRepositoryStub) CreatePending(ctx context.Context, userID int64, amount int64, serviceType model.ServiceType, limit int) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := s.countPendingLocked(userID)
	if pending >= limit {
		return nil, &domainErrors.QuotaError{OpenCount: pending, Limit: limit}
	}

	s.clock = s.clock.Add(time.Second)
	order := &model.Order{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		ServiceType: serviceType,
		Status:      model.OrderStatusPending,
		CreatedAt:   s.clock,
	}
	s.Orders[order.ID] = order
	return order, nil
}

// CountPending counts the user's pending orders.
func (s *OrderRepositoryStub) CountPending(ctx context.Context, userID int64) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countPendingLocked(userID), nil
}

// GetByID fetches an order copy by identifier.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.Orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns the user's orders newest first.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []model.Order
	for _, order := range s.Orders {
		if order.UserID == userID {
			result = append(result, *order)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

// ListAll returns every order with a synthetic username, newest first.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.OrderWithSubmitter, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var plain []model.Order
	for _, order := range s.Orders {
		plain = append(plain, *order)
	}
	sortNewestFirst(plain)

	result := make([]model.OrderWithSubmitter, 0, len(plain))
	for _, order := range plain {
		result = append(result, model.OrderWithSubmitter{Order: order, Username: "user"})
	}
	return result, nil
}

// Decide applies a terminal status only to pending orders.
func (s *OrderRepositoryStub) Decide(ctx context.Context, id uuid.UUID, status model.OrderStatus, note *string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if order.Status != model.OrderStatusPending {
		return domainErrors.ErrInvalidTransition
	}
	order.Status = status
	order.AdminNote = note
	return nil
}

func (s *OrderRepositoryStub) countPendingLocked(userID int64) int {
	count := 0
	for _, order := range s.Orders {
		if order.UserID == userID && order.Status == model.OrderStatusPending {
			count++
		}
	}
	return count
}

func sortNewestFirst(orders []model.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
