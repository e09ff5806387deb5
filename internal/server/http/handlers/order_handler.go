package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/zaeempppp/telegram-booster/internal/domain/errors"
	"github.com/zaeempppp/telegram-booster/internal/domain/model"
	"github.com/zaeempppp/telegram-booster/internal/server/http/dto"
)

// OrderHandler manages user-side order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/user/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.SubmitOrder(c.Request.Context(), userID, req.Amount, model.ServiceType(req.ServiceType))
	if err != nil {
		var quotaErr *domainErrors.QuotaError
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount), errors.Is(err, domainErrors.ErrInvalidServiceType):
			c.Status(http.StatusUnprocessableEntity)
		case errors.As(err, &quotaErr):
			c.JSON(http.StatusConflict, dto.QuotaExceededResponse{
				Error:     "pending order limit reached",
				OpenCount: quotaErr.OpenCount,
				Limit:     quotaErr.Limit,
			})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{ID: order.ID.String()})
}

// List handles GET /api/user/orders.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	orders, err := h.facade.Orders(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Quota handles GET /api/user/orders/quota.
func (h *OrderHandler) Quota(c *gin.Context) {
	userID := CurrentUserID(c)
	decision, err := h.facade.Quota(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.QuotaResponse{
		Allowed:   decision.Allowed,
		OpenCount: decision.OpenCount,
		Limit:     decision.Limit,
	})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          order.ID.String(),
		Amount:      order.Amount,
		ServiceType: string(order.ServiceType),
		Status:      string(order.Status),
		AdminNote:   order.AdminNote,
		CreatedAt:   order.CreatedAt,
	}
}
