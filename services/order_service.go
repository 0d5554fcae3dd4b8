package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"zestyflow/models"
	"zestyflow/repositories"
)

// CancelWindow is the period after placement during which a customer may
// cancel. Hard business rule, not request-configurable.
const CancelWindow = 2 * time.Minute

// OrderRepository is the persistence surface the order service needs.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	ListByUser(ctx context.Context, userID int) ([]models.Order, error)
	FindByID(ctx context.Context, id int) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error)
}

type OrderService struct {
	orders OrderRepository
	now    func() time.Time
}

func NewOrderService(orders OrderRepository) *OrderService {
	return &OrderService{
		orders: orders,
		now:    time.Now,
	}
}

// Place validates and prices the requested line items, then persists the
// order as placed. Totals are always recomputed here; a quantity below
// one is clamped up to one rather than rejected.
func (s *OrderService) Place(ctx context.Context, userID int, items []models.OrderItemRequest) (*models.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items provided", ErrInvalidInput)
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	total := 0.0
	for i, it := range items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: item %d: missing or invalid name", ErrInvalidInput, i)
		}
		if it.Price == nil || math.IsNaN(*it.Price) || math.IsInf(*it.Price, 0) || *it.Price < 0 {
			return nil, fmt.Errorf("%w: item %d: missing or invalid price", ErrInvalidInput, i)
		}

		quantity := it.Quantity
		if quantity < 1 {
			quantity = 1
		}

		orderItems = append(orderItems, models.OrderItem{
			Name:     name,
			Price:    *it.Price,
			Quantity: quantity,
		})
		total += *it.Price * float64(quantity)
	}

	order := &models.Order{
		OrderNumber: fmt.Sprintf("ORD-%s", uuid.NewString()),
		UserID:      userID,
		Items:       orderItems,
		Total:       total,
		Status:      models.OrderStatusPlaced,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListMine returns the user's orders newest first.
func (s *OrderService) ListMine(ctx context.Context, userID int) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// Cancel transitions a placed order to cancelled. Guards run in a fixed
// order so each violation gets its specific error: existence, ownership,
// status, then the 2-minute window. Nothing is written when any guard
// fails.
func (s *OrderService) Cancel(ctx context.Context, userID, orderID int) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		return nil, ErrForbidden
	}
	if order.Status != models.OrderStatusPlaced {
		return nil, ErrInvalidState
	}
	if s.now().Sub(order.CreatedAt) > CancelWindow {
		return nil, ErrWindowExceeded
	}

	return s.orders.UpdateStatus(ctx, orderID, models.OrderStatusCancelled)
}
