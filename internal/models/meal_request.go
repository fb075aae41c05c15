package models

import "time"

// MealRequest represents the request body for creating or replacing a meal.
// IsDietMeal is a pointer so that an explicit false still passes the
// required binding.
type MealRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	IsDietMeal  *bool     `json:"isDietMeals" binding:"required"`
}
