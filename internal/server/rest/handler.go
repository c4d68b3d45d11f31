package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/mealcatalog/internal/common"
	"github.com/dmitrijs2005/mealcatalog/internal/logging"
	"github.com/dmitrijs2005/mealcatalog/internal/server/models"
	"github.com/gin-gonic/gin"
)

// Catalog is the read side of the catalog service the API serves.
type Catalog interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetMeals(ctx context.Context) ([]models.Meal, error)
	GetMealsByCategory(ctx context.Context, category string) ([]models.Meal, error)
	GetMeal(ctx context.Context, id int64) (*models.Meal, error)
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Message string `json:"message"`
}

const (
	msgCategoryNotFound = "Category not found"
	msgMealNotFound     = "Meal not found"
	msgInvalidMealID    = "Invalid meal ID"
	msgFetchCategories  = "Failed to fetch categories"
	msgFetchCategory    = "Failed to fetch category"
	msgFetchMeals       = "Failed to fetch meals"
	msgFetchMeal        = "Failed to fetch meal"
	msgInternal         = "Internal server error"
	msgTooManyRequests  = "Too many requests"
	msgNotFound         = "Not found"
)

type handler struct {
	catalog Catalog
	logger  logging.Logger
}

func (h *handler) listCategories(c *gin.Context) {
	categories, err := h.catalog.GetCategories(c.Request.Context())
	if err != nil {
		h.fail(c, err, msgFetchCategories)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

func (h *handler) getCategory(c *gin.Context) {
	category, err := h.catalog.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: msgCategoryNotFound})
			return
		}
		h.fail(c, err, msgFetchCategory)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *handler) listMeals(c *gin.Context) {
	meals, err := h.catalog.GetMeals(c.Request.Context())
	if err != nil {
		h.fail(c, err, msgFetchMeals)
		return
	}
	h.writeMeals(c, meals)
}

// listMealsByCategory answers 200 with an empty list for unknown categories.
func (h *handler) listMealsByCategory(c *gin.Context) {
	meals, err := h.catalog.GetMealsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.fail(c, err, msgFetchMeals)
		return
	}
	h.writeMeals(c, meals)
}

func (h *handler) getMeal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: msgInvalidMealID})
		return
	}

	meal, err := h.catalog.GetMeal(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: msgMealNotFound})
			return
		}
		h.fail(c, err, msgFetchMeal)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) noRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: msgNotFound})
}

func (h *handler) writeMeals(c *gin.Context, meals []models.Meal) {
	if meals == nil {
		meals = []models.Meal{}
	}
	c.JSON(http.StatusOK, meals)
}

// fail logs err and answers with a generic 500; the error text never
// reaches the client.
func (h *handler) fail(c *gin.Context, err error, msg string) {
	h.logger.Error(c.Request.Context(), msg, "error", err, "path", c.Request.URL.Path)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: msg})
}
