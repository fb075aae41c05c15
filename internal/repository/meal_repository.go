package repository

import (
	"database/sql"
	"fmt"

	"daily-diet-be/internal/entities"
)

// MealRepository defines the interface for meal database operations.
// Every query is scoped by the owning user id: a meal is never visible or
// mutable cross-user.
type MealRepository interface {
	Create(meal *entities.Meal) error
	GetByUserID(userID string) ([]*entities.Meal, error)
	GetByID(id, userID string) (*entities.Meal, error)
	Update(id, userID string, meal *entities.Meal) error
	Delete(id, userID string) error
	CountByUserID(userID string) (int, error)
	CountByDiet(userID string, isDietMeal bool) (int, error)
	BestDietDay(userID string) (*entities.DietDaySummary, error)
}

type mealRepository struct {
	db *sql.DB
}

// NewMealRepository creates a new meal repository
func NewMealRepository(db *sql.DB) MealRepository {
	return &mealRepository{db: db}
}

// Create inserts a new meal into the database
func (r *mealRepository) Create(meal *entities.Meal) error {
	query := `
		INSERT INTO meals (id, "userId", name, description, date, "isDietMeals")
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(query,
		meal.ID,
		meal.UserID,
		meal.Name,
		meal.Description,
		meal.Date.UTC(),
		meal.IsDietMeal,
	)
	if err != nil {
		return fmt.Errorf("failed to create meal: %w", err)
	}

	return nil
}

// GetByUserID retrieves all meals for a specific user
func (r *mealRepository) GetByUserID(userID string) ([]*entities.Meal, error) {
	query := `
		SELECT id, "userId", name, description, date, "isDietMeals"
		FROM meals
		WHERE "userId" = $1
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meals: %w", err)
	}
	defer rows.Close()

	meals := []*entities.Meal{}
	for rows.Next() {
		var meal entities.Meal
		err := rows.Scan(
			&meal.ID,
			&meal.UserID,
			&meal.Name,
			&meal.Description,
			&meal.Date,
			&meal.IsDietMeal,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meal: %w", err)
		}
		meals = append(meals, &meal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meals: %w", err)
	}

	return meals, nil
}

// GetByID retrieves a meal by id, only if the given user owns it.
// Returns nil without error when nothing matches: absence of a row is
// indistinguishable from access denied.
func (r *mealRepository) GetByID(id, userID string) (*entities.Meal, error) {
	query := `
		SELECT id, "userId", name, description, date, "isDietMeals"
		FROM meals
		WHERE id = $1 AND "userId" = $2
	`

	var meal entities.Meal
	err := r.db.QueryRow(query, id, userID).Scan(
		&meal.ID,
		&meal.UserID,
		&meal.Name,
		&meal.Description,
		&meal.Date,
		&meal.IsDietMeal,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find meal: %w", err)
	}

	return &meal, nil
}

// Update replaces the mutable fields of the meal matched by (id, userId).
// Matching no rows is a silent no-op.
func (r *mealRepository) Update(id, userID string, meal *entities.Meal) error {
	query := `
		UPDATE meals
		SET name = $1, description = $2, date = $3, "isDietMeals" = $4
		WHERE id = $5 AND "userId" = $6
	`

	_, err := r.db.Exec(query,
		meal.Name,
		meal.Description,
		meal.Date.UTC(),
		meal.IsDietMeal,
		id,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update meal: %w", err)
	}

	return nil
}

// Delete removes the meal matched by (id, userId). Matching no rows is a
// silent no-op.
func (r *mealRepository) Delete(id, userID string) error {
	query := `DELETE FROM meals WHERE id = $1 AND "userId" = $2`

	_, err := r.db.Exec(query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}

	return nil
}

// CountByUserID counts all meals owned by the user
func (r *mealRepository) CountByUserID(userID string) (int, error) {
	query := `SELECT COUNT(id) FROM meals WHERE "userId" = $1`

	var count int
	if err := r.db.QueryRow(query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count meals: %w", err)
	}

	return count, nil
}

// CountByDiet counts the user's meals filtered by the diet flag
func (r *mealRepository) CountByDiet(userID string, isDietMeal bool) (int, error) {
	query := `SELECT COUNT(id) FROM meals WHERE "userId" = $1 AND "isDietMeals" = $2`

	var count int
	if err := r.db.QueryRow(query, userID, isDietMeal).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count meals: %w", err)
	}

	return count, nil
}

// BestDietDay returns the calendar date with the most diet meals logged for
// the user. Ties break toward the earliest date. Returns nil without error
// when the user has no diet meals.
func (r *mealRepository) BestDietDay(userID string) (*entities.DietDaySummary, error) {
	query := `
		SELECT date, COUNT(id) AS count
		FROM meals
		WHERE "userId" = $1 AND "isDietMeals" = true
		GROUP BY date
		ORDER BY count DESC, date ASC
		LIMIT 1
	`

	var summary entities.DietDaySummary
	err := r.db.QueryRow(query, userID).Scan(&summary.Date, &summary.Count)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get best diet day: %w", err)
	}

	return &summary, nil
}
