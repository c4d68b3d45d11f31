package client

import (
	"context"

	"github.com/dmitrijs2005/mealcatalog/internal/client/models"
)

type Client interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, slug string) (*models.Category, error)
	ListMeals(ctx context.Context) ([]models.Meal, error)
	ListMealsByCategory(ctx context.Context, category string) ([]models.Meal, error)
	GetMeal(ctx context.Context, id int64) (*models.Meal, error)
	Ping(ctx context.Context) error
}
