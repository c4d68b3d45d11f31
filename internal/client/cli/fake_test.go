package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/mealcatalog/internal/client/config"
	"github.com/dmitrijs2005/mealcatalog/internal/client/models"
	"github.com/dmitrijs2005/mealcatalog/internal/common"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	categories []models.Category
	meals      []models.Meal

	// forced failures
	pingErr error
	listErr error
	mealErr error

	calls []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		categories: []models.Category{
			{ID: 1, Name: "Breakfast", Slug: "breakfast", Description: "Start your day right", MealCount: 3},
			{ID: 2, Name: "Lunch", Slug: "lunch", Description: "Midday energy boost", MealCount: 1},
		},
		meals: []models.Meal{
			{
				ID:              1,
				Name:            "Avocado Toast",
				Description:     "Toasted sourdough with avocado",
				Category:        "breakfast",
				NutritionalInfo: models.NutritionalInfo{Calories: 450, Protein: 15, Carbs: 28, Fats: 32},
				Tags:            []string{"vegetarian", "high-fat"},
				Ingredients:     []string{"2 slices of sourdough bread", "1 ripe avocado"},
				Steps:           []string{"Toast the bread.", "Spread the avocado."},
			},
			{
				ID:              2,
				Name:            "Breakfast Burrito",
				Description:     "Scrambled eggs and beans",
				Category:        "breakfast",
				NutritionalInfo: models.NutritionalInfo{Calories: 550, Protein: 22, Carbs: 48, Fats: 28},
				Tags:            []string{"high-protein"},
			},
			{
				ID:              3,
				Name:            "Spinach and Feta Omelette",
				Description:     "Light and fluffy",
				Category:        "breakfast",
				NutritionalInfo: models.NutritionalInfo{Calories: 380, Protein: 25, Carbs: 8, Fats: 28},
				Tags:            []string{"vegetarian", "low-carb"},
			},
			{
				ID:              4,
				Name:            "Grilled Chicken Wrap",
				Description:     "Chicken with chipotle mayo",
				Category:        "lunch",
				NutritionalInfo: models.NutritionalInfo{Calories: 650, Protein: 38, Carbs: 45, Fats: 30},
			},
		},
	}
}

func (f *fakeClient) ListCategories(context.Context) ([]models.Category, error) {
	f.calls = append(f.calls, "categories")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.categories, nil
}

func (f *fakeClient) GetCategory(_ context.Context, slug string) (*models.Category, error) {
	f.calls = append(f.calls, "category "+slug)
	for _, c := range f.categories {
		if strings.EqualFold(c.Slug, slug) {
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeClient) ListMeals(context.Context) ([]models.Meal, error) {
	f.calls = append(f.calls, "meals")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.meals, nil
}

func (f *fakeClient) ListMealsByCategory(_ context.Context, category string) ([]models.Meal, error) {
	f.calls = append(f.calls, "meals "+category)
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Meal{}
	for _, m := range f.meals {
		if strings.EqualFold(m.Category, category) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeClient) GetMeal(_ context.Context, id int64) (*models.Meal, error) {
	f.calls = append(f.calls, "meal")
	if f.mealErr != nil {
		return nil, f.mealErr
	}
	for _, m := range f.meals {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeClient) Ping(context.Context) error {
	return f.pingErr
}

// newTestApp returns an App writing plain text to the returned buffer.
func newTestApp(t *testing.T, c *fakeClient, input string) (*App, *bytes.Buffer) {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.NoColor = true

	var out bytes.Buffer
	a, err := NewApp(cfg, c, strings.NewReader(input), &out, &bytes.Buffer{})
	require.NoError(t, err)
	return a, &out
}
