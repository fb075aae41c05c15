package service

import (
	"context"
	"fmt"
	"time"

	"daily-diet-be/internal/cache"
	"daily-diet-be/internal/entities"
	"daily-diet-be/internal/models"
	"daily-diet-be/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MealService defines the interface for meal business logic. Every operation
// takes the authenticated user's id and scopes all repository access by it.
type MealService interface {
	ListMeals(userID string) ([]*entities.Meal, error)
	GetMeal(userID, mealID string) ([]*entities.Meal, error)
	CreateMeal(userID string, req *models.MealRequest) error
	UpdateMeal(userID, mealID string, req *models.MealRequest) error
	DeleteMeal(userID, mealID string) error
	Summary(userID string) (*models.MealCountResponse, error)
	DietSummary(userID string, isDietMeal bool) (*models.MealCountResponse, error)
	BestDietDay(userID string) (*models.BestDietDayResponse, error)
}

const summaryCacheTTL = 5 * time.Minute

type mealService struct {
	repo   repository.MealRepository
	cache  cache.Cache
	logger *zap.Logger
	ctx    context.Context
}

// NewMealService creates a new meal service
func NewMealService(repo repository.MealRepository, cacheClient cache.Cache, logger *zap.Logger) MealService {
	svc := &mealService{
		repo:   repo,
		logger: logger,
		ctx:    context.Background(),
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// ListMeals returns all meals owned by the user
func (s *mealService) ListMeals(userID string) ([]*entities.Meal, error) {
	return s.repo.GetByUserID(userID)
}

// GetMeal returns the meal matched by (id, userId) as a result set: one
// element on a match, empty when nothing matches. Absence of a row and
// access denied are intentionally indistinguishable.
func (s *mealService) GetMeal(userID, mealID string) ([]*entities.Meal, error) {
	meal, err := s.repo.GetByID(mealID, userID)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return []*entities.Meal{}, nil
	}
	return []*entities.Meal{meal}, nil
}

// CreateMeal persists a new meal owned by the user, assigning its id
// server-side
func (s *mealService) CreateMeal(userID string, req *models.MealRequest) error {
	meal := &entities.Meal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		IsDietMeal:  *req.IsDietMeal,
	}

	if err := s.repo.Create(meal); err != nil {
		return err
	}

	s.invalidateSummaries(userID)
	return nil
}

// UpdateMeal fully replaces the mutable fields of the meal matched by
// (id, userId). Matching nothing is a silent no-op: callers cannot
// distinguish "updated" from "nothing matched".
func (s *mealService) UpdateMeal(userID, mealID string, req *models.MealRequest) error {
	meal := &entities.Meal{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		IsDietMeal:  *req.IsDietMeal,
	}

	if err := s.repo.Update(mealID, userID, meal); err != nil {
		return err
	}

	s.invalidateSummaries(userID)
	return nil
}

// DeleteMeal deletes the meal matched by (id, userId); silent no-op when
// nothing matches
func (s *mealService) DeleteMeal(userID, mealID string) error {
	if err := s.repo.Delete(mealID, userID); err != nil {
		return err
	}

	s.invalidateSummaries(userID)
	return nil
}

// Summary returns the total count of the user's meals
func (s *mealService) Summary(userID string) (*models.MealCountResponse, error) {
	key := summaryKey(userID)
	if cached := s.cachedCount(key); cached != nil {
		return cached, nil
	}

	count, err := s.repo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}

	resp := &models.MealCountResponse{Count: count}
	s.cacheValue(key, resp)
	return resp, nil
}

// DietSummary returns the count of the user's meals filtered by the diet flag
func (s *mealService) DietSummary(userID string, isDietMeal bool) (*models.MealCountResponse, error) {
	key := dietSummaryKey(userID, isDietMeal)
	if cached := s.cachedCount(key); cached != nil {
		return cached, nil
	}

	count, err := s.repo.CountByDiet(userID, isDietMeal)
	if err != nil {
		return nil, err
	}

	resp := &models.MealCountResponse{Count: count}
	s.cacheValue(key, resp)
	return resp, nil
}

// BestDietDay returns the calendar date with the most diet meals logged for
// the user, nil when the user has no diet meals. Despite the endpoint name
// this is a per-date maximum, not a consecutive-day streak.
func (s *mealService) BestDietDay(userID string) (*models.BestDietDayResponse, error) {
	day, err := s.repo.BestDietDay(userID)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, nil
	}

	return &models.BestDietDayResponse{
		Date:  day.Date,
		Count: day.Count,
	}, nil
}

func (s *mealService) cachedCount(key string) *models.MealCountResponse {
	if s.cache == nil {
		return nil
	}
	var cached models.MealCountResponse
	if err := s.cache.GetJSON(s.ctx, key, &cached); err != nil {
		return nil
	}
	return &cached
}

func (s *mealService) cacheValue(key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(s.ctx, key, value, summaryCacheTTL); err != nil && s.logger != nil {
		s.logger.Warn("failed to cache summary", zap.String("key", key), zap.Error(err))
	}
}

// invalidateSummaries drops the user's cached summary responses after a
// mutation so stale counts are never served
func (s *mealService) invalidateSummaries(userID string) {
	if s.cache == nil {
		return
	}
	keys := []string{
		summaryKey(userID),
		dietSummaryKey(userID, true),
		dietSummaryKey(userID, false),
	}
	for _, key := range keys {
		if err := s.cache.Delete(s.ctx, key); err != nil && s.logger != nil {
			s.logger.Warn("failed to invalidate summary cache", zap.String("key", key), zap.Error(err))
		}
	}
}

func summaryKey(userID string) string {
	return fmt.Sprintf("meals:summary:%s", userID)
}

func dietSummaryKey(userID string, isDietMeal bool) string {
	return fmt.Sprintf("meals:summary:%s:diet:%t", userID, isDietMeal)
}
