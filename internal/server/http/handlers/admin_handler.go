package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/zaeempppp/telegram-booster/internal/domain/errors"
	"github.com/zaeempppp/telegram-booster/internal/domain/model"
	"github.com/zaeempppp/telegram-booster/internal/server/http/dto"
)

// AdminHandler manages the administrator review endpoints.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// List handles GET /api/admin/orders.
func (h *AdminHandler) List(c *gin.Context) {
	actorID := CurrentUserID(c)
	orders, err := h.facade.AllOrders(c.Request.Context(), actorID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.AdminOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.AdminOrderResponse{
			OrderResponse: toOrderResponse(o.Order),
			UserID:        o.UserID,
			Username:      o.Username,
		})
	}

	c.JSON(http.StatusOK, response)
}

// Decide handles POST /api/admin/orders/:id/decision.
func (h *AdminHandler) Decide(c *gin.Context) {
	actorID := CurrentUserID(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err = h.facade.DecideOrder(c.Request.Context(), actorID, orderID, model.OrderStatus(req.Decision), req.Note)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidDecision):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}
