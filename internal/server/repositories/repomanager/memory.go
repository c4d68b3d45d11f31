package repomanager

import (
	"github.com/dmitrijs2005/mealcatalog/internal/server/repositories/categories"
	"github.com/dmitrijs2005/mealcatalog/internal/server/repositories/meals"
	"github.com/dmitrijs2005/mealcatalog/internal/server/repositories/users"
)

// InMemoryRepositoryManager keeps every collection in process memory.
// Nothing survives a restart.
type InMemoryRepositoryManager struct {
	users      *users.InMemoryRepository
	meals      *meals.InMemoryRepository
	categories *categories.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:      users.NewInMemoryRepository(),
		meals:      meals.NewInMemoryRepository(),
		categories: categories.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Meals() meals.Repository {
	return m.meals
}

func (m *InMemoryRepositoryManager) Categories() categories.Repository {
	return m.categories
}
