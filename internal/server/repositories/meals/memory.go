// Package meals stores catalog meals.
package meals

import (
	"context"

	"github.com/dmitrijs2005/mealcatalog/internal/common"
	"github.com/dmitrijs2005/mealcatalog/internal/server/models"
	"github.com/dmitrijs2005/mealcatalog/internal/server/repositories/memtable"
)

// InMemoryRepository hands out deep copies only, so callers cannot reach
// into stored tag, ingredient or step slices.
type InMemoryRepository struct {
	rows *memtable.Table[models.Meal]
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{rows: memtable.New[models.Meal]()}
}

func (r *InMemoryRepository) Create(ctx context.Context, meal models.NewMeal) (*models.Meal, error) {
	row, _ := r.rows.Insert(meal.ToMeal, nil)
	out := row.Clone()
	return &out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id int64) (*models.Meal, error) {
	row, ok := r.rows.Get(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := row.Clone()
	return &out, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.Meal, error) {
	return cloneAll(r.rows.All()), nil
}

// ListByCategory matches the category label case-insensitively.
func (r *InMemoryRepository) ListByCategory(ctx context.Context, category string) ([]models.Meal, error) {
	rows := r.rows.Filter(func(m models.Meal) bool { return m.InCategory(category) })
	return cloneAll(rows), nil
}

func cloneAll(rows []models.Meal) []models.Meal {
	for i := range rows {
		rows[i] = rows[i].Clone()
	}
	return rows
}
