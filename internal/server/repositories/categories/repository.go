package categories

import (
	"context"

	"github.com/dmitrijs2005/mealcatalog/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, category models.NewCategory) (*models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	AddMealCount(ctx context.Context, id int64, delta int) (*models.Category, error)
}
