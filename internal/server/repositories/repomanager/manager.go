// Package repomanager vends the catalog repositories as one unit so services
// depend on a single handle instead of three loose stores.
package repomanager

import (
	"github.com/dmitrijs2005/mealcatalog/internal/server/repositories/categories"
	"github.com/dmitrijs2005/mealcatalog/internal/server/repositories/meals"
	"github.com/dmitrijs2005/mealcatalog/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Meals() meals.Repository
	Categories() categories.Repository
}
