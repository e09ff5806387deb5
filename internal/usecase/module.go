package usecase

import (
	"go.uber.org/fx"

	"github.com/zaeempppp/telegram-booster/internal/config"
	"github.com/zaeempppp/telegram-booster/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(newAdmissionPolicy),
	fx.Provide(
		NewAuthUseCase,
		NewOrderUseCase,
		NewReviewUseCase,
	),
)

type policyParams struct {
	fx.In

	Orders repository.OrderRepository
	Config *config.Config
}

func newAdmissionPolicy(p policyParams) *AdmissionPolicy {
	return NewAdmissionPolicy(p.Orders, p.Config.PendingOrderLimit)
}
