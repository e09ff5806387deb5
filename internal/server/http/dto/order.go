package dto

import "time"

// CreateOrderRequest is the boost order submission payload.
type CreateOrderRequest struct {
	Amount      int64  `json:"amount"`
	ServiceType string `json:"service_type,omitempty"`
}

// CreateOrderResponse carries the id of a freshly created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// OrderResponse describes one of the caller's own orders.
type OrderResponse struct {
	ID          string    `json:"id"`
	Amount      int64     `json:"amount"`
	ServiceType string    `json:"service_type"`
	Status      string    `json:"status"`
	AdminNote   *string   `json:"admin_note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuotaResponse reports the open-order admission state.
type QuotaResponse struct {
	Allowed   bool `json:"allowed"`
	OpenCount int  `json:"open_count"`
	Limit     int  `json:"limit"`
}

// QuotaExceededResponse is the conflict body for a blocked submission.
type QuotaExceededResponse struct {
	Error     string `json:"error"`
	OpenCount int    `json:"open_count"`
	Limit     int    `json:"limit"`
}

// AdminOrderResponse describes an order row in the review table.
type AdminOrderResponse struct {
	OrderResponse
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// DecisionRequest is the admin approve/reject payload.
type DecisionRequest struct {
	Decision string  `json:"decision" binding:"required"`
	Note     *string `json:"note,omitempty"`
}
