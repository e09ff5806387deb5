package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/zaeempppp/telegram-booster/internal/domain/model"
	"github.com/zaeempppp/telegram-booster/internal/usecase"
)

// BoosterFacade aggregates the application operations used across handlers.
type BoosterFacade struct {
	auth   *usecase.AuthUseCase
	orders *usecase.OrderUseCase
	review *usecase.ReviewUseCase
}

func NewBoosterFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, review *usecase.ReviewUseCase) *BoosterFacade {
	return &BoosterFacade{auth: auth, orders: orders, review: review}
}

func (f *BoosterFacade) Register(ctx context.Context, email, password, username string) (string, error) {
	_, token, err := f.auth.Register(ctx, email, password, username)
	return token, err
}

func (f *BoosterFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *BoosterFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *BoosterFacade) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *BoosterFacade) SubmitOrder(ctx context.Context, userID int64, amount int64, serviceType model.ServiceType) (*model.Order, error) {
	return f.orders.Submit(ctx, userID, amount, serviceType)
}

func (f *BoosterFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *BoosterFacade) Quota(ctx context.Context, userID int64) (usecase.AdmissionDecision, error) {
	return f.orders.Quota(ctx, userID)
}

func (f *BoosterFacade) AllOrders(ctx context.Context, actorID int64) ([]model.OrderWithSubmitter, error) {
	return f.review.ListAll(ctx, actorID)
}

func (f *BoosterFacade) DecideOrder(ctx context.Context, actorID int64, orderID uuid.UUID, decision model.OrderStatus, note *string) error {
	return f.review.Decide(ctx, actorID, orderID, decision, note)
}
