// Package users stores catalog user accounts.
package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mealcatalog/internal/common"
	"github.com/dmitrijs2005/mealcatalog/internal/server/models"
	"github.com/dmitrijs2005/mealcatalog/internal/server/repositories/memtable"
)

type InMemoryRepository struct {
	rows *memtable.Table[models.User]
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{rows: memtable.New[models.User]()}
}

// Create stores user under the next id and fills user.ID. Usernames are
// unique (exact match).
func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	row, ok := r.rows.Insert(
		func(id int64) models.User {
			u := *user
			u.ID = id
			return u
		},
		func(existing models.User) bool { return existing.UserName == user.UserName },
	)
	if !ok {
		return nil, fmt.Errorf("username %q: %w", user.UserName, common.ErrorAlreadyExists)
	}

	user.ID = row.ID
	return &row, nil
}

func (r *InMemoryRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	row, ok := r.rows.Get(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &row, nil
}

func (r *InMemoryRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	row, ok := r.rows.Find(func(u models.User) bool { return u.UserName == userName })
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &row, nil
}
