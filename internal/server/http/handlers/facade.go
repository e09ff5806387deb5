package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/zaeempppp/telegram-booster/internal/domain/model"
	"github.com/zaeempppp/telegram-booster/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password, username string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// OrderFacade encapsulates user-side order operations exposed via HTTP.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, userID int64, amount int64, serviceType model.ServiceType) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Quota(ctx context.Context, userID int64) (usecase.AdmissionDecision, error)
}

// AdminFacade provides the administrator review operations.
type AdminFacade interface {
	AllOrders(ctx context.Context, actorID int64) ([]model.OrderWithSubmitter, error)
	DecideOrder(ctx context.Context, actorID int64, orderID uuid.UUID, decision model.OrderStatus, note *string) error
}

// BoosterFacade aggregates the full set of operations used across handlers.
type BoosterFacade interface {
	AuthFacade
	OrderFacade
	AdminFacade
}
