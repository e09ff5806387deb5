package usecase

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/zaeempppp/telegram-booster/internal/domain/errors"
	"github.com/zaeempppp/telegram-booster/internal/domain/model"
	"github.com/zaeempppp/telegram-booster/internal/domain/repository"
)

// ReviewUseCase covers the administrator side of the order lifecycle.
type ReviewUseCase struct {
	orders repository.OrderRepository
	users  repository.UserRepository
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(orders repository.OrderRepository, users repository.UserRepository) *ReviewUseCase {
	return &ReviewUseCase{orders: orders, users: users}
}

// ListAll returns every order joined with submitter usernames, newest
// first. Only administrators may call it.
func (u *ReviewUseCase) ListAll(ctx context.Context, actorID int64) ([]model.OrderWithSubmitter, error) {
	if err := u.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return u.orders.ListAll(ctx)
}

// Decide applies a terminal status to a pending order. A non-admin actor
// gets ErrForbidden; an already decided order keeps its stored state and
// the caller gets ErrInvalidTransition.
func (u *ReviewUseCase) Decide(ctx context.Context, actorID int64, orderID uuid.UUID, decision model.OrderStatus, note *string) error {
	if !model.ValidDecision(decision) {
		return domainErrors.ErrInvalidDecision
	}
	if err := u.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	return u.orders.Decide(ctx, orderID, decision, note)
}

func (u *ReviewUseCase) requireAdmin(ctx context.Context, actorID int64) error {
	actor, err := u.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return domainErrors.ErrForbidden
	}
	return nil
}
