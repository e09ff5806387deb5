package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus describes the review lifecycle of a boost order.
// An order starts pending and is decided exactly once.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

// Terminal reports whether no further transition is defined from the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusApproved || s == OrderStatusRejected
}

// Decision values an administrator may apply to a pending order.
func ValidDecision(s OrderStatus) bool {
	return s == OrderStatusApproved || s == OrderStatusRejected
}

// ServiceType is the boost category requested for the channel.
type ServiceType string

const (
	ServiceMembers    ServiceType = "members"
	ServiceEngagement ServiceType = "engagement"
	ServiceViews      ServiceType = "views"
	ServiceLikes      ServiceType = "likes"
)

// KnownServiceType reports whether the category is one of the supported values.
func KnownServiceType(s ServiceType) bool {
	switch s {
	case ServiceMembers, ServiceEngagement, ServiceViews, ServiceLikes:
		return true
	}
	return false
}

// Order describes a boost request submitted by a user.
type Order struct {
	ID          uuid.UUID
	UserID      int64
	Amount      int64
	ServiceType ServiceType
	Status      OrderStatus
	AdminNote   *string
	CreatedAt   time.Time
}

// OrderWithSubmitter joins an order with its submitter for the admin table.
type OrderWithSubmitter struct {
	Order
	Username string
}
