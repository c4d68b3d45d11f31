// Package services contains the catalog's business rules on top of the
// repositories: meal/category bookkeeping and user accounts.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/mealcatalog/internal/common"
	"github.com/dmitrijs2005/mealcatalog/internal/server/models"
	"github.com/dmitrijs2005/mealcatalog/internal/server/repositories/repomanager"
)

// CatalogService owns meals and categories. It is created once at start-up
// and handed to the transport layer.
//
// Category.MealCount is maintained incrementally by CreateMeal and never
// recomputed. Any future operation that changes a meal's category or removes
// a meal has to adjust the count itself, or the count will drift.
type CatalogService struct {
	repomanager repomanager.RepositoryManager

	// serializes meal insert + count bump
	mu sync.Mutex
}

func NewCatalogService(m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{repomanager: m}
}

// CreateMeal stores the meal and bumps the meal count of the category whose
// slug equals meal.Category ignoring case. A meal pointing at an unknown
// category is stored and simply not counted.
//
// The insert is not rolled back when the category lookup or the count update
// fails: the stored meal is returned together with the error, and that
// category's mealCount stays one short.
func (s *CatalogService) CreateMeal(ctx context.Context, meal models.NewMeal) (*models.Meal, error) {
	if err := meal.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.repomanager.Meals().Create(ctx, meal)
	if err != nil {
		return nil, fmt.Errorf("error creating meal: %w", err)
	}

	categories := s.repomanager.Categories()
	category, err := categories.GetBySlug(ctx, created.Category)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return created, nil
		}
		return created, fmt.Errorf("error looking up category %q: %w", created.Category, err)
	}

	if _, err := categories.AddMealCount(ctx, category.ID, 1); err != nil {
		return created, fmt.Errorf("error updating meal count of %q: %w", category.Slug, err)
	}

	return created, nil
}

func (s *CatalogService) GetMeals(ctx context.Context) ([]models.Meal, error) {
	return s.repomanager.Meals().List(ctx)
}

func (s *CatalogService) GetMealsByCategory(ctx context.Context, category string) ([]models.Meal, error) {
	return s.repomanager.Meals().ListByCategory(ctx, category)
}

// GetMeal returns common.ErrorNotFound for an unknown id.
func (s *CatalogService) GetMeal(ctx context.Context, id int64) (*models.Meal, error) {
	return s.repomanager.Meals().Get(ctx, id)
}

// CreateCategory stores a category; MealCount defaults to zero. Slugs must be
// unique ignoring case (common.ErrorAlreadyExists otherwise).
func (s *CatalogService) CreateCategory(ctx context.Context, category models.NewCategory) (*models.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repomanager.Categories().Create(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("error creating category: %w", err)
	}
	return created, nil
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.repomanager.Categories().List(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	return s.repomanager.Categories().Get(ctx, id)
}

// GetCategoryBySlug matches the slug ignoring case.
func (s *CatalogService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.repomanager.Categories().GetBySlug(ctx, slug)
}
