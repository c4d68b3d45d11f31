package browse

import (
	"testing"

	"github.com/dmitrijs2005/mealcatalog/internal/client/models"
	"github.com/dmitrijs2005/mealcatalog/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meal(id int64, name, desc string, cal, protein, carbs float64, tags ...string) models.Meal {
	return models.Meal{
		ID:              id,
		Name:            name,
		Description:     desc,
		NutritionalInfo: models.NutritionalInfo{Calories: cal, Protein: protein, Carbs: carbs},
		Tags:            tags,
	}
}

func breakfast() []models.Meal {
	return []models.Meal{
		meal(1, "Avocado Toast", "Toasted sourdough bread topped with mashed avocado", 450, 15, 28, "vegetarian", "high-fat"),
		meal(2, "Greek Yogurt Bowl", "Creamy Greek yogurt topped with fresh berries", 320, 20, 42, "vegetarian", "high-protein"),
		meal(3, "Breakfast Burrito", "Scrambled eggs, black beans, avocado, and salsa", 550, 22, 48, "high-protein"),
		meal(4, "Blueberry Pancakes", "Fluffy buttermilk pancakes", 420, 10, 65, "vegetarian"),
		meal(5, "Spinach and Feta Omelette", "Light and fluffy omelette", 380, 25, 8, "vegetarian", "low-carb"),
		meal(6, "Overnight Chia Pudding", "Creamy chia seed pudding", 320, 12, 42, "vegetarian"),
		meal(7, "Protein-Packed Smoothie Bowl", "Thick, creamy smoothie bowl", 390, 28, 55, "vegetarian"),
	}
}

func ids(meals []models.Meal) []int64 {
	out := make([]int64, 0, len(meals))
	for _, m := range meals {
		out = append(out, m.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []int64
	}{
		{name: "zero query keeps everything in order", query: Query{}, want: []int64{1, 2, 3, 4, 5, 6, 7}},
		{name: "search matches name ignoring case", query: Query{Search: "TOAST"}, want: []int64{1}},
		{name: "search matches description", query: Query{Search: "avocado"}, want: []int64{1, 3}},
		{name: "search without hits", query: Query{Search: "sushi"}, want: []int64{}},
		{name: "vegetarian", query: Query{Filter: FilterVegetarian}, want: []int64{1, 2, 4, 5, 6, 7}},
		{name: "high protein uses threshold not tag", query: Query{Filter: FilterHighProtein}, want: []int64{5, 7}},
		{name: "low carb", query: Query{Filter: FilterLowCarb}, want: []int64{1, 5}},
		{name: "calories ascending keeps ties in fetch order", query: Query{Sort: SortCaloriesAsc}, want: []int64{2, 6, 5, 7, 4, 1, 3}},
		{name: "calories descending", query: Query{Sort: SortCaloriesDesc}, want: []int64{3, 1, 4, 7, 5, 2, 6}},
		{name: "protein descending", query: Query{Sort: SortProteinDesc}, want: []int64{7, 5, 3, 2, 1, 6, 4}},
		{name: "search then filter then sort", query: Query{Search: "creamy", Filter: FilterVegetarian, Sort: SortProteinDesc}, want: []int64{7, 2, 6}},
		{name: "unknown filter and sort fall back", query: Query{Filter: "spicy", Sort: "random"}, want: []int64{1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(breakfast(), tt.query)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_TwoMeals(t *testing.T) {
	meals := []models.Meal{
		meal(1, "light", "", 200, 30, 10, "vegetarian"),
		meal(2, "heavy", "", 500, 10, 50),
	}

	tests := []struct {
		name  string
		query Query
		want  []int64
	}{
		{name: "high protein keeps the light meal", query: Query{Filter: FilterHighProtein}, want: []int64{1}},
		{name: "low carb keeps the light meal", query: Query{Filter: FilterLowCarb}, want: []int64{1}},
		{name: "vegetarian keeps the light meal", query: Query{Filter: FilterVegetarian}, want: []int64{1}},
		{name: "calories descending puts 500 first", query: Query{Sort: SortCaloriesDesc}, want: []int64{2, 1}},
		{name: "calories ascending puts 200 first", query: Query{Sort: SortCaloriesAsc}, want: []int64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(meals, tt.query)))
		})
	}
}

func TestApply_Thresholds(t *testing.T) {
	meals := []models.Meal{
		meal(1, "a", "", 0, 24.9, 30.1),
		meal(2, "b", "", 0, 25, 30),
	}

	assert.Equal(t, []int64{2}, ids(Apply(meals, Query{Filter: FilterHighProtein})))
	assert.Equal(t, []int64{2}, ids(Apply(meals, Query{Filter: FilterLowCarb})))
}

func TestApply_TagIsExact(t *testing.T) {
	meals := []models.Meal{meal(1, "a", "", 0, 0, 0, "Vegetarian"), meal(2, "b", "", 0, 0, 0, "vegetarian")}
	assert.Equal(t, []int64{2}, ids(Apply(meals, Query{Filter: FilterVegetarian})))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := breakfast()
	before := ids(in)

	out := Apply(in, Query{Sort: SortCaloriesDesc})
	assert.Equal(t, before, ids(in))

	out[0].Name = "changed"
	assert.NotEqual(t, "changed", in[2].Name)
}

func TestApply_Idempotent(t *testing.T) {
	q := Query{Search: "bowl", Sort: SortCaloriesAsc}
	first := Apply(breakfast(), q)
	assert.Equal(t, first, Apply(breakfast(), q))
	assert.Equal(t, first, Apply(first, q))
}

func TestApply_Empty(t *testing.T) {
	got := Apply(nil, Query{Search: "x", Filter: FilterLowCarb, Sort: SortProteinDesc})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{in: "", want: FilterAll},
		{in: "all", want: FilterAll},
		{in: "Vegetarian", want: FilterVegetarian},
		{in: " high-protein ", want: FilterHighProtein},
		{in: "LOW-CARB", want: FilterLowCarb},
		{in: "keto", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilter(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrorInvalidFilter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		in      string
		want    SortKey
		wantErr bool
	}{
		{in: "", want: SortDefault},
		{in: "default", want: SortDefault},
		{in: "calories-asc", want: SortCaloriesAsc},
		{in: "Calories-Desc", want: SortCaloriesDesc},
		{in: "protein-desc", want: SortProteinDesc},
		{in: "protein-asc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSort(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrorInvalidSort)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListsMatchParsers(t *testing.T) {
	for _, f := range Filters() {
		got, err := ParseFilter(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	for _, k := range SortKeys() {
		got, err := ParseSort(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}
