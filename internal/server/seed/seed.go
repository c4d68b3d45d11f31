// Package seed loads the sample catalog the server starts with.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/dmitrijs2005/mealcatalog/internal/server/models"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultDocument []byte

type User struct {
	UserName string `yaml:"username"`
	Password string `yaml:"password"`
}

// Data is the parsed seed document.
type Data struct {
	Categories []models.NewCategory `yaml:"categories"`
	Meals      []models.NewMeal     `yaml:"meals"`
	Users      []User               `yaml:"users"`
}

// CatalogWriter is the subset of the catalog service Apply needs.
type CatalogWriter interface {
	CreateCategory(ctx context.Context, category models.NewCategory) (*models.Category, error)
	CreateMeal(ctx context.Context, meal models.NewMeal) (*models.Meal, error)
}

type UserWriter interface {
	CreateUser(ctx context.Context, username, password string) (*models.User, error)
}

// Default returns the embedded sample catalog.
func Default() (*Data, error) {
	return Parse(defaultDocument)
}

func Parse(b []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("error parsing seed document: %w", err)
	}
	return &d, nil
}

// Load reads the seed document at path, or the embedded one when path is
// empty.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}
	return Parse(b)
}

// Apply writes categories, then meals, then users. Categories go first so
// that every meal is counted against its category.
func Apply(ctx context.Context, catalog CatalogWriter, users UserWriter, d *Data) error {
	for _, c := range d.Categories {
		if _, err := catalog.CreateCategory(ctx, c); err != nil {
			return fmt.Errorf("error seeding category %q: %w", c.Slug, err)
		}
	}

	for _, m := range d.Meals {
		if _, err := catalog.CreateMeal(ctx, m); err != nil {
			return fmt.Errorf("error seeding meal %q: %w", m.Name, err)
		}
	}

	for _, u := range d.Users {
		if _, err := users.CreateUser(ctx, u.UserName, u.Password); err != nil {
			return fmt.Errorf("error seeding user %q: %w", u.UserName, err)
		}
	}

	return nil
}
