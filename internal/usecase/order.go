package usecase

import (
	"context"
	"log/slog"

	domainErrors "github.com/zaeempppp/telegram-booster/internal/domain/errors"
	"github.com/zaeempppp/telegram-booster/internal/domain/model"
	"github.com/zaeempppp/telegram-booster/internal/domain/repository"
)

// Notifier receives fire-and-forget summaries of newly created orders.
type Notifier interface {
	NotifyOrderCreated(username string, userID int64, order *model.Order)
}

// OrderUseCase orchestrates submission of new boost orders.
type OrderUseCase struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	policy   *AdmissionPolicy
	notifier Notifier
	logger   *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, users repository.UserRepository, policy *AdmissionPolicy, notifier Notifier, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users, policy: policy, notifier: notifier, logger: logger}
}

// Submit validates and admits a new order, persists it as pending and
// queues an operator notification. Notification problems never fail the
// submission.
func (u *OrderUseCase) Submit(ctx context.Context, userID int64, amount int64, serviceType model.ServiceType) (*model.Order, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	serviceType, err := NormalizeServiceType(serviceType)
	if err != nil {
		return nil, err
	}

	decision, err := u.policy.CanSubmit(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, &domainErrors.QuotaError{OpenCount: decision.OpenCount, Limit: decision.Limit}
	}

	// The repository re-checks the quota inside its transaction, so a
	// concurrent submission racing past the check above still cannot
	// exceed the cap.
	order, err := u.orders.CreatePending(ctx, userID, amount, serviceType, u.policy.Limit())
	if err != nil {
		return nil, err
	}

	if user, err := u.users.GetByID(ctx, userID); err != nil {
		u.logger.Error("lookup submitter for notification failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
	} else {
		u.notifier.NotifyOrderCreated(user.Username, user.ID, order)
	}

	return order, nil
}

// ListByUser returns the user's own orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Quota exposes the admission decision for the submission form.
func (u *OrderUseCase) Quota(ctx context.Context, userID int64) (AdmissionDecision, error) {
	return u.policy.CanSubmit(ctx, userID)
}
