// Package cli implements mealctl, the command-line browser for the meal
// catalog.
//
// One-shot commands (categories, category, meals, meal) print and exit.
// The browse command starts an interactive loop that keeps the fetched
// meal list in memory and re-runs the search, filter and sort pipeline
// from package browse after every change, without going back to the
// server.
package cli
