package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeal_DecodesAPIShape(t *testing.T) {
	body := `{"id":5,"name":"Spinach and Feta Omelette","description":"Light and fluffy","category":"breakfast",
		"imageUrl":"https://example.test/o.jpg","nutritionalInfo":{"calories":380,"protein":25,"carbs":8,"fats":28},
		"tags":["vegetarian","low-carb","high-protein"],"ingredients":["3 large eggs"],"steps":[]}`

	var m Meal
	require.NoError(t, json.Unmarshal([]byte(body), &m))

	assert.Equal(t, int64(5), m.ID)
	assert.Equal(t, "https://example.test/o.jpg", m.ImageURL)
	assert.Equal(t, NutritionalInfo{Calories: 380, Protein: 25, Carbs: 8, Fats: 28}, m.NutritionalInfo)
	assert.True(t, m.HasTag("low-carb"))
	assert.False(t, m.HasTag("Low-Carb"))
	assert.Empty(t, m.Steps)
}

func TestCategory_Decodes(t *testing.T) {
	var c Category
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Breakfast","slug":"breakfast","mealCount":7}`), &c))
	assert.Equal(t, Category{ID: 1, Name: "Breakfast", Slug: "breakfast", MealCount: 7}, c)
}
