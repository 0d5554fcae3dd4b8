package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"zestyflow/models"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists the order and its line items in one transaction.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_number, user_id, total, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, now(), now())
		 RETURNING id, created_at, updated_at`,
		order.OrderNumber, order.UserID, order.Total, order.Status,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	for _, item := range order.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, name, price, quantity) VALUES ($1, $2, $3, $4)`,
			order.ID, item.Name, item.Price, item.Quantity,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// ListByUser returns the user's orders newest first, line items included.
func (r *OrderRepository) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	query := `
		SELECT o.id, o.order_number, o.user_id, o.total, o.status, o.created_at, o.updated_at,
		       i.name, i.price, i.quantity
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC, o.id DESC, i.id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		var item models.OrderItem
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.UserID, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt,
			&item.Name, &item.Price, &item.Quantity,
		); err != nil {
			return nil, err
		}

		if n := len(orders); n > 0 && orders[n-1].ID == o.ID {
			orders[n-1].Items = append(orders[n-1].Items, item)
			continue
		}
		o.Items = []models.OrderItem{item}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) FindByID(ctx context.Context, id int) (*models.Order, error) {
	var o models.Order
	err := r.db.QueryRow(ctx,
		`SELECT id, order_number, user_id, total, status, created_at, updated_at FROM orders WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// UpdateStatus writes the new status and returns the updated order.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	var o models.Order
	err := r.db.QueryRow(ctx,
		`UPDATE orders SET status = $1, updated_at = now() WHERE id = $2
		 RETURNING id, order_number, user_id, total, status, created_at, updated_at`,
		status, id,
	).Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, price, quantity FROM order_items WHERE order_id = $1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
