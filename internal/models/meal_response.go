package models

import "time"

// MealCountResponse represents an aggregate count of meals
type MealCountResponse struct {
	Count int `json:"count"`
}

// BestDietDayResponse represents the calendar date with the most diet meals
// logged and how many were logged on it
type BestDietDayResponse struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}
