package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/dmitrijs2005/mealcatalog/internal/common"
	"github.com/dmitrijs2005/mealcatalog/internal/logging"
	"github.com/dmitrijs2005/mealcatalog/internal/server/models"
	"github.com/dmitrijs2005/mealcatalog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mealcatalog/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func seededCatalog(t *testing.T) *services.CatalogService {
	t.Helper()
	ctx := context.Background()
	svc := services.NewCatalogService(repomanager.NewInMemoryRepositoryManager())

	for _, c := range []models.NewCategory{
		{Name: "Breakfast", Slug: "breakfast", Description: "Start your day right"},
		{Name: "Lunch", Slug: "lunch", Description: "Midday energy boost"},
	} {
		_, err := svc.CreateCategory(ctx, c)
		require.NoError(t, err)
	}

	for _, m := range []models.NewMeal{
		{Name: "Avocado Toast", Category: "breakfast", Tags: []string{"vegetarian"},
			NutritionalInfo: models.NutritionalInfo{Calories: 450, Protein: 15, Carbs: 28, Fats: 32},
			Ingredients:     []string{"bread", "avocado"}, Steps: []string{"toast", "spread"}},
		{Name: "Grilled Chicken Wrap", Category: "lunch",
			NutritionalInfo: models.NutritionalInfo{Calories: 650, Protein: 38, Carbs: 45, Fats: 30}},
	} {
		_, err := svc.CreateMeal(ctx, m)
		require.NoError(t, err)
	}
	return svc
}

func newTestServer(t *testing.T, catalog Catalog) *Server {
	t.Helper()
	return NewServer(":0", logging.Nop{}, catalog, Options{})
}

func do(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRoutes_Status(t *testing.T) {
	s := newTestServer(t, seededCatalog(t))

	tests := []struct {
		name    string
		path    string
		status  int
		message string
	}{
		{name: "categories", path: "/api/categories", status: http.StatusOK},
		{name: "category", path: "/api/categories/lunch", status: http.StatusOK},
		{name: "category any case", path: "/api/categories/LUNCH", status: http.StatusOK},
		{name: "unknown category", path: "/api/categories/dessert", status: http.StatusNotFound, message: "Category not found"},
		{name: "meals", path: "/api/meals", status: http.StatusOK},
		{name: "meals by category", path: "/api/meals/breakfast", status: http.StatusOK},
		{name: "meal", path: "/api/meal/1", status: http.StatusOK},
		{name: "non-numeric id", path: "/api/meal/abc", status: http.StatusBadRequest, message: "Invalid meal ID"},
		{name: "fractional id", path: "/api/meal/1.5", status: http.StatusBadRequest, message: "Invalid meal ID"},
		{name: "unknown id", path: "/api/meal/99999", status: http.StatusNotFound, message: "Meal not found"},
		{name: "negative id", path: "/api/meal/-1", status: http.StatusNotFound, message: "Meal not found"},
		{name: "unknown route", path: "/api/nope", status: http.StatusNotFound, message: "Not found"},
		{name: "healthz", path: "/healthz", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, tt.path)
			assert.Equal(t, tt.status, rec.Code)
			if tt.message != "" {
				assert.Equal(t, ErrorResponse{Message: tt.message}, decode[ErrorResponse](t, rec))
			}
		})
	}
}

func TestListCategories_Body(t *testing.T) {
	s := newTestServer(t, seededCatalog(t))

	rec := do(t, s, "/api/categories")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[[]models.Category](t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, models.Category{ID: 1, Name: "Breakfast", Slug: "breakfast", Description: "Start your day right", MealCount: 1}, got[0])
	assert.Equal(t, 1, got[1].MealCount)
}

func TestGetMeal_JSONShape(t *testing.T) {
	s := newTestServer(t, seededCatalog(t))

	rec := do(t, s, "/api/meal/2")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"id", "name", "description", "category", "imageUrl", "nutritionalInfo", "tags", "ingredients", "steps"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, []any{}, raw["ingredients"])
	assert.Equal(t, []any{}, raw["steps"])
	assert.Equal(t, map[string]any{"calories": 650.0, "protein": 38.0, "carbs": 45.0, "fats": 30.0}, raw["nutritionalInfo"])
}

func TestListMealsByCategory(t *testing.T) {
	s := newTestServer(t, seededCatalog(t))

	rec := do(t, s, "/api/meals/Breakfast")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]models.Meal](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "Avocado Toast", got[0].Name)

	rec = do(t, s, "/api/meals/dessert")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

type brokenCatalog struct {
	err error
}

func (b brokenCatalog) GetCategories(context.Context) ([]models.Category, error) {
	return nil, b.err
}

func (b brokenCatalog) GetCategoryBySlug(context.Context, string) (*models.Category, error) {
	return nil, b.err
}

func (b brokenCatalog) GetMeals(context.Context) ([]models.Meal, error) {
	return nil, b.err
}

func (b brokenCatalog) GetMealsByCategory(context.Context, string) ([]models.Meal, error) {
	return nil, b.err
}

func (b brokenCatalog) GetMeal(context.Context, int64) (*models.Meal, error) {
	return nil, b.err
}

func TestRoutes_InternalErrorsAreGeneric(t *testing.T) {
	s := newTestServer(t, brokenCatalog{err: errors.New("disk on fire")})

	tests := []struct {
		path    string
		message string
	}{
		{"/api/categories", "Failed to fetch categories"},
		{"/api/categories/lunch", "Failed to fetch category"},
		{"/api/meals", "Failed to fetch meals"},
		{"/api/meals/lunch", "Failed to fetch meals"},
		{"/api/meal/1", "Failed to fetch meal"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, s, tt.path)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, ErrorResponse{Message: tt.message}, decode[ErrorResponse](t, rec))
			assert.NotContains(t, rec.Body.String(), "disk on fire")
		})
	}
}

func TestRoutes_WrappedNotFound(t *testing.T) {
	s := newTestServer(t, brokenCatalog{err: errors.Join(errors.New("lookup"), common.ErrorNotFound)})

	assert.Equal(t, http.StatusNotFound, do(t, s, "/api/meal/7").Code)
	assert.Equal(t, http.StatusNotFound, do(t, s, "/api/categories/x").Code)
	assert.Equal(t, http.StatusInternalServerError, do(t, s, "/api/meals").Code)
}

type panickingCatalog struct {
	brokenCatalog
}

func (panickingCatalog) GetMeals(context.Context) ([]models.Meal, error) {
	panic("boom")
}

func TestRecovery(t *testing.T) {
	s := newTestServer(t, panickingCatalog{})

	rec := do(t, s, "/api/meals")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, ErrorResponse{Message: "Internal server error"}, decode[ErrorResponse](t, rec))
}
