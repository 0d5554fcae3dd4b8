package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"zestyflow/models"
)

const (
	menuCacheKey = "menu:available"
	menuCacheTTL = 60 * time.Second
)

// MenuRepository is the persistence surface the menu service needs.
type MenuRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	ListAvailable(ctx context.Context) ([]models.MenuItem, error)
}

type MenuService struct {
	menu  MenuRepository
	cache *redis.Client
}

// NewMenuService wires the catalog. A nil cache client disables caching.
func NewMenuService(menu MenuRepository, cache *redis.Client) *MenuService {
	return &MenuService{
		menu:  menu,
		cache: cache,
	}
}

// ListAvailable returns available items newest first, cache-aside with a
// short TTL. Cache failures fall through to the database silently.
func (s *MenuService) ListAvailable(ctx context.Context) ([]models.MenuItem, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, menuCacheKey).Result(); err == nil {
			var items []models.MenuItem
			if err := json.Unmarshal([]byte(raw), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.menu.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(items); err == nil {
			s.cache.Set(ctx, menuCacheKey, raw, menuCacheTTL)
		}
	}
	return items, nil
}

func (s *MenuService) Create(ctx context.Context, req models.CreateMenuItemRequest) (*models.MenuItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Price == nil {
		return nil, fmt.Errorf("%w: name and price required", ErrInvalidInput)
	}
	if *req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}

	item := &models.MenuItem{
		Name:        name,
		Description: req.Description,
		Price:       *req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Available:   true,
	}
	if item.Category == "" {
		item.Category = models.DefaultMenuCategory
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := s.menu.Create(ctx, item); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Del(ctx, menuCacheKey)
	}
	return item, nil
}
