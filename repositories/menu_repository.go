package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"zestyflow/models"
)

type MenuRepository struct {
	db *pgxpool.Pool
}

func NewMenuRepository(db *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, description, price, image_url, category, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		item.Name, item.Description, item.Price, item.ImageURL, item.Category, item.Available,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

// ListAvailable returns every available item, newest first.
func (r *MenuRepository) ListAvailable(ctx context.Context) ([]models.MenuItem, error) {
	query := `
		SELECT id, name, description, price, image_url, category, available, created_at, updated_at
		FROM menu_items
		WHERE available = true
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var it models.MenuItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Description, &it.Price, &it.ImageURL, &it.Category, &it.Available, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
