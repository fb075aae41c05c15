package entities

import "time"

// Meal represents a meal entity in the database
type Meal struct {
	ID          string    `json:"id"` // UUID
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	IsDietMeal  bool      `json:"isDietMeals"`
}

// DietDaySummary is the aggregation result for the best diet day query:
// one calendar date and how many diet meals were logged on it.
type DietDaySummary struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}
