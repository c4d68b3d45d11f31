// Package models holds the catalog entities served by the API.
package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mealcatalog/internal/common"
)

// NutritionalInfo is the per-serving nutrition record attached to a meal.
type NutritionalInfo struct {
	Calories float64 `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Fats     float64 `json:"fats" yaml:"fats"`
}

func (n NutritionalInfo) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"calories", n.Calories},
		{"protein", n.Protein},
		{"carbs", n.Carbs},
		{"fats", n.Fats},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", common.ErrorValidation, f.name)
		}
	}
	return nil
}

type Meal struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	ImageURL        string          `json:"imageUrl"`
	NutritionalInfo NutritionalInfo `json:"nutritionalInfo"`
	Tags            []string        `json:"tags"`
	Ingredients     []string        `json:"ingredients"`
	Steps           []string        `json:"steps"`
}

// Clone returns a deep copy so callers can never alias store state.
func (m Meal) Clone() Meal {
	m.Tags = cloneStrings(m.Tags)
	m.Ingredients = cloneStrings(m.Ingredients)
	m.Steps = cloneStrings(m.Steps)
	return m
}

// HasTag reports whether the meal carries tag exactly as written.
func (m Meal) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// InCategory compares the meal's category label with c, ignoring case.
func (m Meal) InCategory(c string) bool {
	return strings.EqualFold(m.Category, c)
}

// NewMeal is the input for creating a meal. Nil Ingredients or Steps are
// stored as empty lists.
type NewMeal struct {
	Name            string          `yaml:"name"`
	Description     string          `yaml:"description"`
	Category        string          `yaml:"category"`
	ImageURL        string          `yaml:"imageUrl"`
	NutritionalInfo NutritionalInfo `yaml:"nutritionalInfo"`
	Tags            []string        `yaml:"tags"`
	Ingredients     []string        `yaml:"ingredients"`
	Steps           []string        `yaml:"steps"`
}

func (n NewMeal) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return fmt.Errorf("%w: meal name is required", common.ErrorValidation)
	}
	if strings.TrimSpace(n.Category) == "" {
		return fmt.Errorf("%w: meal category is required", common.ErrorValidation)
	}
	return n.NutritionalInfo.Validate()
}

// ToMeal materializes the input under the given id.
func (n NewMeal) ToMeal(id int64) Meal {
	return Meal{
		ID:              id,
		Name:            n.Name,
		Description:     n.Description,
		Category:        n.Category,
		ImageURL:        n.ImageURL,
		NutritionalInfo: n.NutritionalInfo,
		Tags:            cloneStrings(n.Tags),
		Ingredients:     cloneStrings(n.Ingredients),
		Steps:           cloneStrings(n.Steps),
	}
}

// cloneStrings copies s, turning nil into an empty slice so JSON output is
// always an array.
func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
