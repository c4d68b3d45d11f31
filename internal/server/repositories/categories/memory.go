// Package categories stores meal categories.
package categories

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mealcatalog/internal/common"
	"github.com/dmitrijs2005/mealcatalog/internal/server/models"
	"github.com/dmitrijs2005/mealcatalog/internal/server/repositories/memtable"
)

type InMemoryRepository struct {
	rows *memtable.Table[models.Category]
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{rows: memtable.New[models.Category]()}
}

// Create rejects a slug that equals an existing one ignoring case.
func (r *InMemoryRepository) Create(ctx context.Context, category models.NewCategory) (*models.Category, error) {
	row, ok := r.rows.Insert(category.ToCategory, func(existing models.Category) bool {
		return existing.Matches(category.Slug)
	})
	if !ok {
		return nil, fmt.Errorf("slug %q: %w", category.Slug, common.ErrorAlreadyExists)
	}
	return &row, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id int64) (*models.Category, error) {
	row, ok := r.rows.Get(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &row, nil
}

func (r *InMemoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	row, ok := r.rows.Find(func(c models.Category) bool { return c.Matches(slug) })
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &row, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.Category, error) {
	return r.rows.All(), nil
}

// AddMealCount adjusts the stored meal count of category id by delta.
func (r *InMemoryRepository) AddMealCount(ctx context.Context, id int64, delta int) (*models.Category, error) {
	row, ok := r.rows.Update(id, func(c models.Category) models.Category {
		c.MealCount += delta
		return c
	})
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &row, nil
}
