package usecase

import (
	"context"

	"github.com/zaeempppp/telegram-booster/internal/domain/repository"
)

// AdmissionDecision is the result of the open-order quota check.
type AdmissionDecision struct {
	Allowed   bool
	OpenCount int
	Limit     int
}

// AdmissionPolicy bounds how many pending orders a user may hold at once.
type AdmissionPolicy struct {
	orders repository.OrderRepository
	limit  int
}

// NewAdmissionPolicy constructs AdmissionPolicy with the given cap.
func NewAdmissionPolicy(orders repository.OrderRepository, limit int) *AdmissionPolicy {
	if limit <= 0 {
		limit = 3
	}
	return &AdmissionPolicy{orders: orders, limit: limit}
}

// Limit returns the configured pending-order cap.
func (p *AdmissionPolicy) Limit() int {
	return p.limit
}

// CanSubmit reports whether the user may create a new order right now.
// A failed count query is propagated, never treated as allowed.
func (p *AdmissionPolicy) CanSubmit(ctx context.Context, userID int64) (AdmissionDecision, error) {
	count, err := p.orders.CountPending(ctx, userID)
	if err != nil {
		return AdmissionDecision{}, err
	}
	return AdmissionDecision{
		Allowed:   count < p.limit,
		OpenCount: count,
		Limit:     p.limit,
	}, nil
}
