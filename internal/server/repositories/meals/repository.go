package meals

import (
	"context"

	"github.com/dmitrijs2005/mealcatalog/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, meal models.NewMeal) (*models.Meal, error)
	Get(ctx context.Context, id int64) (*models.Meal, error)
	List(ctx context.Context) ([]models.Meal, error)
	ListByCategory(ctx context.Context, category string) ([]models.Meal, error)
}
