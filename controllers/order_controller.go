package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"zestyflow/middleware"
	"zestyflow/models"
	"zestyflow/services"
)

type OrderController struct {
	orders *services.OrderService
	dev    bool
}

func NewOrderController(orders *services.OrderService, dev bool) *OrderController {
	return &OrderController{orders: orders, dev: dev}
}

// Place godoc
// @Summary Place order
// @Description Place a new order; totals are computed server-side
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.PlaceOrderRequest true "Order"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) Place(c *gin.Context) {
	userID := c.GetInt(middleware.ContextUserID)

	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "No items provided or invalid format",
		})
		return
	}

	order, err := ctrl.orders.Place(c.Request.Context(), userID, req.Items)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
			return
		}
		respondInternal(c, ctrl.dev, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order placed successfully",
		Data: models.PlaceOrderResponse{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			Total:       order.Total,
			Status:      order.Status,
			CreatedAt:   order.CreatedAt,
		},
	})
}

// ListMine godoc
// @Summary List my orders
// @Description Get the authenticated user's orders, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders/me [get]
func (ctrl *OrderController) ListMine(c *gin.Context) {
	userID := c.GetInt(middleware.ContextUserID)

	orders, err := ctrl.orders.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, ctrl.dev, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    orders,
	})
}

// Cancel godoc
// @Summary Cancel order
// @Description Cancel a placed order within the 2-minute window
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/cancel [patch]
func (ctrl *OrderController) Cancel(c *gin.Context) {
	userID := c.GetInt(middleware.ContextUserID)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil || orderID <= 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Order not found"})
		return
	}

	order, err := ctrl.orders.Cancel(c.Request.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Order not found"})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, models.ErrorResponse{Success: false, Message: "Not authorized to cancel this order"})
		case errors.Is(err, services.ErrInvalidState):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Order cannot be cancelled"})
		case errors.Is(err, services.ErrWindowExceeded):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Time limit exceeded to cancel order"})
		default:
			respondInternal(c, ctrl.dev, err)
		}
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order cancelled successfully",
		Data:    order,
	})
}
