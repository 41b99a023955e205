package handlers

import (
	"net/http"

	"healthmate-backend/models"
	"healthmate-backend/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles HTTP requests for health profiles
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpsertProfileRequest represents the request body for creating or updating
// a health profile. Enum fields are validated against the closed value sets;
// unrecognized values are rejected rather than stored.
type UpsertProfileRequest struct {
	SleepPattern       string  `json:"sleep_pattern" binding:"required"`
	SleepHours         int     `json:"sleep_hours" binding:"required"`
	HydrationLevel     string  `json:"hydration_level" binding:"required"`
	StressLevel        string  `json:"stress_level" binding:"required"`
	ExerciseFrequency  string  `json:"exercise_frequency" binding:"required"`
	DietType           string  `json:"diet_type" binding:"required"`
	ExistingConditions *string `json:"existing_conditions"`
	LifestyleNotes     *string `json:"lifestyle_notes"`
}

// Upsert handles POST /api/health/profile
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	serviceReq := service.UpsertProfileRequest{
		UserID:             currentUserID(c),
		SleepPattern:       models.SleepPattern(req.SleepPattern),
		SleepHours:         req.SleepHours,
		HydrationLevel:     models.HydrationLevel(req.HydrationLevel),
		StressLevel:        models.StressLevel(req.StressLevel),
		ExerciseFrequency:  models.ExerciseFrequency(req.ExerciseFrequency),
		DietType:           models.DietType(req.DietType),
		ExistingConditions: req.ExistingConditions,
		LifestyleNotes:     req.LifestyleNotes,
	}

	if !serviceReq.SleepPattern.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sleep_pattern"})
		return
	}
	if !serviceReq.HydrationLevel.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hydration_level"})
		return
	}
	if !serviceReq.StressLevel.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stress_level"})
		return
	}
	if !serviceReq.ExerciseFrequency.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exercise_frequency"})
		return
	}
	if !serviceReq.DietType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid diet_type"})
		return
	}

	profile, err := h.profileService.Upsert(c.Request.Context(), serviceReq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Get handles GET /api/health/profile. Users without a profile get a JSON
// null body, not an error.
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if profile == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, profile)
}
