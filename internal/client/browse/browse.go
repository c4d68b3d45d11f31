// Package browse narrows and orders a fetched meal list for display:
// text search, then a single filter, then a stable sort. Everything runs
// on the client; the server is never asked to filter.
package browse

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/mealcatalog/internal/client/models"
	"github.com/dmitrijs2005/mealcatalog/internal/common"
)

// Thresholds for the nutrition filters, in grams per serving.
const (
	HighProteinMin = 25.0
	LowCarbMax     = 30.0
)

const vegetarianTag = "vegetarian"

type Filter string

const (
	FilterAll         Filter = "all"
	FilterVegetarian  Filter = "vegetarian"
	FilterHighProtein Filter = "high-protein"
	FilterLowCarb     Filter = "low-carb"
)

type SortKey string

const (
	SortDefault      SortKey = "default"
	SortCaloriesAsc  SortKey = "calories-asc"
	SortCaloriesDesc SortKey = "calories-desc"
	SortProteinDesc  SortKey = "protein-desc"
)

// Query is the user's current view settings. The zero value shows every
// meal in fetch order.
type Query struct {
	Search string
	Filter Filter
	Sort   SortKey
}

var filters = map[Filter]func(models.Meal) bool{
	FilterAll:         func(models.Meal) bool { return true },
	FilterVegetarian:  func(m models.Meal) bool { return m.HasTag(vegetarianTag) },
	FilterHighProtein: func(m models.Meal) bool { return m.NutritionalInfo.Protein >= HighProteinMin },
	FilterLowCarb:     func(m models.Meal) bool { return m.NutritionalInfo.Carbs <= LowCarbMax },
}

// SortDefault has no comparator: fetch order is kept.
var comparators = map[SortKey]func(a, b models.Meal) int{
	SortCaloriesAsc: func(a, b models.Meal) int {
		return cmp.Compare(a.NutritionalInfo.Calories, b.NutritionalInfo.Calories)
	},
	SortCaloriesDesc: func(a, b models.Meal) int {
		return cmp.Compare(b.NutritionalInfo.Calories, a.NutritionalInfo.Calories)
	},
	SortProteinDesc: func(a, b models.Meal) int {
		return cmp.Compare(b.NutritionalInfo.Protein, a.NutritionalInfo.Protein)
	},
}

// Filters lists the accepted filter names in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterVegetarian, FilterHighProtein, FilterLowCarb}
}

// SortKeys lists the accepted sort names in display order.
func SortKeys() []SortKey {
	return []SortKey{SortDefault, SortCaloriesAsc, SortCaloriesDesc, SortProteinDesc}
}

// ParseFilter maps user input (any case, "" meaning all) to a Filter.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FilterAll, nil
	}
	if _, ok := filters[f]; !ok {
		return "", fmt.Errorf("%w: %q", common.ErrorInvalidFilter, s)
	}
	return f, nil
}

// ParseSort maps user input (any case, "" meaning default) to a SortKey.
func ParseSort(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return SortDefault, nil
	}
	if _, ok := comparators[k]; !ok && k != SortDefault {
		return "", fmt.Errorf("%w: %q", common.ErrorInvalidSort, s)
	}
	return k, nil
}

// Matches reports whether text occurs in the meal's name or description,
// ignoring case. Empty text matches everything.
func Matches(m models.Meal, text string) bool {
	if text == "" {
		return true
	}
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(m.Name), needle) ||
		strings.Contains(strings.ToLower(m.Description), needle)
}

// Apply returns the meals selected by q, ordered by q.Sort. The input slice
// is left untouched and the result is never nil. Unknown Filter or Sort
// values behave like all and default.
func Apply(meals []models.Meal, q Query) []models.Meal {
	keep, ok := filters[q.Filter]
	if !ok {
		keep = filters[FilterAll]
	}

	out := make([]models.Meal, 0, len(meals))
	for _, m := range meals {
		if Matches(m, q.Search) && keep(m) {
			out = append(out, m)
		}
	}

	if compare := comparators[q.Sort]; compare != nil {
		slices.SortStableFunc(out, compare)
	}
	return out
}
