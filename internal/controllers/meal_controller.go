package controllers

import (
	"net/http"

	"daily-diet-be/internal/middleware"
	"daily-diet-be/internal/models"
	"daily-diet-be/internal/service"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	mealService service.MealService
}

func NewMealController(mealService service.MealService) *MealController {
	return &MealController{
		mealService: mealService,
	}
}

// identityFromContext pulls the identity attached by the auth middleware
func identityFromContext(c *gin.Context) (*models.Identity, bool) {
	value, exists := c.Get(middleware.IdentityKey)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Identity not found in request context",
		})
		return nil, false
	}
	return value.(*models.Identity), true
}

// ListMeals handles GET /meals
func (mc *MealController) ListMeals(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		return
	}

	meals, err := mc.mealService.ListMeals(identity.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// GetMeal handles GET /meals/:id - the result set is empty, not a 404,
// when the id does not exist or belongs to someone else
func (mc *MealController) GetMeal(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		return
	}

	meals, err := mc.mealService.GetMeal(identity.ID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// CreateMeal handles POST /meals
func (mc *MealController) CreateMeal(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		return
	}

	var req models.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := mc.mealService.CreateMeal(identity.ID, &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.Status(http.StatusCreated)
}

// UpdateMeal handles PUT /meals/:id - full replacement; 204 whether or not
// a row matched
func (mc *MealController) UpdateMeal(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		return
	}

	var req models.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := mc.mealService.UpdateMeal(identity.ID, c.Param("id"), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteMeal handles DELETE /meals/:id - 204 whether or not a row matched
func (mc *MealController) DeleteMeal(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		return
	}

	if err := mc.mealService.DeleteMeal(identity.ID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// Summary handles GET /meals/summary
func (mc *MealController) Summary(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		return
	}

	summary, err := mc.mealService.Summary(identity.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": summary})
}

// DietSummary handles GET /meals/summary/diet
func (mc *MealController) DietSummary(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		return
	}

	summary, err := mc.mealService.DietSummary(identity.ID, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dietMeals": summary})
}

// NotDietSummary handles GET /meals/summary/not-diet
func (mc *MealController) NotDietSummary(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		return
	}

	summary, err := mc.mealService.DietSummary(identity.ID, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notDietMeals": summary})
}

// BestDietDay handles GET /meals/best-sequenci-diet - the payload is null
// when the user has no diet meals
func (mc *MealController) BestDietDay(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		return
	}

	best, err := mc.mealService.BestDietDay(identity.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bestSequenciDietMeals": best})
}
