package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mealcatalog/internal/common"
)

// Category groups meals by slug. MealCount is derived: it is bumped every
// time a meal whose category matches Slug is created, and never recomputed.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	MealCount   int    `json:"mealCount"`
}

// Matches compares slug with the category's slug, ignoring case.
func (c Category) Matches(slug string) bool {
	return strings.EqualFold(c.Slug, slug)
}

type NewCategory struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"imageUrl"`
	MealCount   int    `yaml:"mealCount"`
}

func (n NewCategory) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return fmt.Errorf("%w: category name is required", common.ErrorValidation)
	}
	if strings.TrimSpace(n.Slug) == "" {
		return fmt.Errorf("%w: category slug is required", common.ErrorValidation)
	}
	if n.MealCount < 0 {
		return fmt.Errorf("%w: meal count must not be negative", common.ErrorValidation)
	}
	return nil
}

func (n NewCategory) ToCategory(id int64) Category {
	return Category{
		ID:          id,
		Name:        n.Name,
		Slug:        n.Slug,
		Description: n.Description,
		ImageURL:    n.ImageURL,
		MealCount:   n.MealCount,
	}
}
