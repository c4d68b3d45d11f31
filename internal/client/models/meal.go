// Package models holds the client-side view of catalog resources, decoded
// from the API's JSON.
package models

type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

type Meal struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	ImageURL        string          `json:"imageUrl"`
	NutritionalInfo NutritionalInfo `json:"nutritionalInfo"`
	Tags            []string        `json:"tags"`
	Ingredients     []string        `json:"ingredients"`
	Steps           []string        `json:"steps"`
}

// HasTag reports whether tag is present, compared exactly.
func (m Meal) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	MealCount   int    `json:"mealCount"`
}
