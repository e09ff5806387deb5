package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/zaeempppp/telegram-booster/internal/domain/model"
)

// OrderRepository describes persistence operations with boost orders.
type OrderRepository interface {
	// CreatePending inserts a new pending order for the user, holding the
	// user's pending count strictly below limit. The check and the insert
	// run in one transaction so concurrent submissions cannot exceed the
	// cap; a blocked insert returns a *errors.QuotaError.
	CreatePending(ctx context.Context, userID int64, amount int64, serviceType model.ServiceType, limit int) (*model.Order, error)
	// CountPending returns the user's number of orders still in pending state.
	CountPending(ctx context.Context, userID int64) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	// ListAll returns every order joined with its submitter username,
	// newest first.
	ListAll(ctx context.Context) ([]model.OrderWithSubmitter, error)
	// Decide applies a terminal status to a pending order as a single
	// conditional update. It returns ErrNotFound for an unknown id and
	// ErrInvalidTransition when the order is no longer pending.
	Decide(ctx context.Context, id uuid.UUID, status model.OrderStatus, note *string) error
}
