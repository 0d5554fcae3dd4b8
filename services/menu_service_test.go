package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zestyflow/models"
)

// mockMenuRepository simulates the catalog store during tests.
type mockMenuRepository struct {
	CreateFunc        func(ctx context.Context, item *models.MenuItem) error
	ListAvailableFunc func(ctx context.Context) ([]models.MenuItem, error)
}

func (m *mockMenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	item.ID = 1
	return nil
}

func (m *mockMenuRepository) ListAvailable(ctx context.Context) ([]models.MenuItem, error) {
	if m.ListAvailableFunc != nil {
		return m.ListAvailableFunc(ctx)
	}
	return []models.MenuItem{}, nil
}

func TestMenuService_Create(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var created *models.MenuItem
		repo := &mockMenuRepository{
			CreateFunc: func(ctx context.Context, item *models.MenuItem) error {
				created = item
				return nil
			},
		}
		svc := NewMenuService(repo, nil)

		item, err := svc.Create(context.Background(), models.CreateMenuItemRequest{
			Name:  "Cheese Burst Pizza",
			Price: floatPtr(299),
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, models.DefaultMenuCategory, item.Category)
		assert.True(t, item.Available)
	})

	t.Run("explicit availability", func(t *testing.T) {
		svc := NewMenuService(&mockMenuRepository{}, nil)
		unavailable := false

		item, err := svc.Create(context.Background(), models.CreateMenuItemRequest{
			Name:      "Seasonal Special",
			Price:     floatPtr(100),
			Category:  "Specials",
			Available: &unavailable,
		})
		require.NoError(t, err)
		assert.False(t, item.Available)
		assert.Equal(t, "Specials", item.Category)
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewMenuService(&mockMenuRepository{}, nil)

		tests := []struct {
			name string
			req  models.CreateMenuItemRequest
		}{
			{"missing name", models.CreateMenuItemRequest{Price: floatPtr(10)}},
			{"missing price", models.CreateMenuItemRequest{Name: "Pizza"}},
			{"negative price", models.CreateMenuItemRequest{Name: "Pizza", Price: floatPtr(-1)}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Create(context.Background(), tt.req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestMenuService_ListAvailable(t *testing.T) {
	repo := &mockMenuRepository{
		ListAvailableFunc: func(ctx context.Context) ([]models.MenuItem, error) {
			return []models.MenuItem{
				{ID: 2, Name: "Loaded Burger", Available: true},
				{ID: 1, Name: "Cheese Burst Pizza", Available: true},
			}, nil
		},
	}
	svc := NewMenuService(repo, nil)

	items, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].ID)
}
