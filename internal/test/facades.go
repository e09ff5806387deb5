package test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zaeempppp/telegram-booster/internal/domain/model"
	"github.com/zaeempppp/telegram-booster/internal/usecase"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	SubmitFn func(context.Context, int64, int64, model.ServiceType) (*model.Order, error)
	OrdersFn func(context.Context, int64) ([]model.Order, error)
	QuotaFn  func(context.Context, int64) (usecase.AdmissionDecision, error)
}

// SubmitOrder delegates to provided function or returns a default pending order.
func (s OrderFacadeStub) SubmitOrder(ctx context.Context, userID int64, amount int64, serviceType model.ServiceType) (*model.Order, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, userID, amount, serviceType)
	}
	return &model.Order{ID: uuid.New(), UserID: userID, Amount: amount, ServiceType: serviceType, Status: model.OrderStatusPending, CreatedAt: time.Unix(0, 0)}, nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: uuid.New(), UserID: userID, Amount: 100, Status: model.OrderStatusPending}}, nil
}

// Quota returns configured admission decision or a default allowed one.
func (s OrderFacadeStub) Quota(ctx context.Context, userID int64) (usecase.AdmissionDecision, error) {
	if s.QuotaFn != nil {
		return s.QuotaFn(ctx, userID)
	}
	return usecase.AdmissionDecision{Allowed: true, OpenCount: 0, Limit: 3}, nil
}

// AdminFacadeStub simulates administrator review operations.
type AdminFacadeStub struct {
	AllOrdersFn func(context.Context, int64) ([]model.OrderWithSubmitter, error)
	DecideFn    func(context.Context, int64, uuid.UUID, model.OrderStatus, *string) error
}

// AllOrders returns configured listing or an empty one.
func (s AdminFacadeStub) AllOrders(ctx context.Context, actorID int64) ([]model.OrderWithSubmitter, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx, actorID)
	}
	return nil, nil
}

// DecideOrder executes the configured decision handler.
func (s AdminFacadeStub) DecideOrder(ctx context.Context, actorID int64, orderID uuid.UUID, decision model.OrderStatus, note *string) error {
	if s.DecideFn != nil {
		return s.DecideFn(ctx, actorID, orderID, decision, note)
	}
	return nil
}

// BoosterFacadeStub aggregates facade dependencies for HTTP layer tests.
type BoosterFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	AdminFacadeStub
}

// SenderStub records messages handed to the notification dispatcher.
type SenderStub struct {
	SendFn func(context.Context, string) error

	mu       sync.Mutex
	Messages []string
}

// SendMessage stores the message or delegates to the override.
func (s *SenderStub) SendMessage(ctx context.Context, text string) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, text)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, text)
	return nil
}

// Sent returns a copy of recorded messages.
func (s *SenderStub) Sent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.Messages...)
}

// NotifierStub records notifications issued by the submission workflow.
type NotifierStub struct {
	mu    sync.Mutex
	Calls []NotifierCall
}

// NotifierCall captures a single notification request.
type NotifierCall struct {
	Username string
	UserID   int64
	Order    model.Order
}

// NotifyOrderCreated records the notification.
func (s *NotifierStub) NotifyOrderCreated(username string, userID int64, order *model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, NotifierCall{Username: username, UserID: userID, Order: *order})
}

// Count returns number of recorded notifications.
func (s *NotifierStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}
