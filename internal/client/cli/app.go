package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/mealcatalog/internal/client/browse"
	"github.com/dmitrijs2005/mealcatalog/internal/client/client"
	"github.com/dmitrijs2005/mealcatalog/internal/client/config"
	"github.com/dmitrijs2005/mealcatalog/internal/client/models"
	"github.com/dmitrijs2005/mealcatalog/internal/common"
	"github.com/dmitrijs2005/mealcatalog/internal/logging"
)

type App struct {
	config *config.Config
	client client.Client
	logger logging.Logger
	out    *renderer
	in     io.Reader
}

// NewApp wires the CLI around c. Diagnostics go to errOut at the configured
// log level; catalog output goes to out.
func NewApp(cfg *config.Config, c client.Client, in io.Reader, out, errOut io.Writer) (*App, error) {
	logger, err := logging.New(logging.BackendSlog, cfg.LogLevel, errOut)
	if err != nil {
		return nil, err
	}

	return &App{
		config: cfg,
		client: c,
		logger: logger.With("module", "mealctl"),
		out:    newRenderer(out, cfg.NoColor),
		in:     in,
	}, nil
}

// Categories prints every category.
func (a *App) Categories(ctx context.Context) error {
	cats, err := a.client.ListCategories(ctx)
	if err != nil {
		return a.apiError(ctx, "listing categories", err)
	}
	a.out.categories(cats)
	return nil
}

// Category prints one category followed by its meals.
func (a *App) Category(ctx context.Context, slug string) error {
	c, err := a.client.GetCategory(ctx, slug)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("category %q not found", slug)
		}
		return a.apiError(ctx, "loading category", err)
	}

	meals, err := a.client.ListMealsByCategory(ctx, c.Slug)
	if err != nil {
		return a.apiError(ctx, "listing meals", err)
	}

	a.out.category(*c)
	a.out.printf("\n")
	a.out.mealList(c.Name, meals, len(meals), browse.Query{})
	return nil
}

// Meals prints the meals of category (all meals when empty) after running
// q through the browse pipeline.
func (a *App) Meals(ctx context.Context, category string, q browse.Query) error {
	meals, heading, err := a.fetchMeals(ctx, category)
	if err != nil {
		return err
	}
	a.out.mealList(heading, browse.Apply(meals, q), len(meals), q)
	return nil
}

// Meal prints the detail view of one meal.
func (a *App) Meal(ctx context.Context, id int64) error {
	m, err := a.client.GetMeal(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("meal #%d not found", id)
		}
		return a.apiError(ctx, "loading meal", err)
	}
	a.out.meal(*m)
	return nil
}

func (a *App) fetchMeals(ctx context.Context, category string) ([]models.Meal, string, error) {
	if category == "" {
		meals, err := a.client.ListMeals(ctx)
		if err != nil {
			return nil, "", a.apiError(ctx, "listing meals", err)
		}
		return meals, "All meals", nil
	}

	meals, err := a.client.ListMealsByCategory(ctx, category)
	if err != nil {
		return nil, "", a.apiError(ctx, "listing meals", err)
	}
	return meals, category, nil
}

func (a *App) apiError(ctx context.Context, action string, err error) error {
	a.logger.Debug(ctx, "api call failed", "action", action, "error", err, "server", a.config.ServerURL)
	if errors.Is(err, client.ErrUnavailable) {
		return fmt.Errorf("%s: catalog server at %s is unreachable", action, a.config.ServerURL)
	}
	return fmt.Errorf("%s: %w", action, err)
}
