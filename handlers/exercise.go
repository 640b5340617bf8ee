package handlers

import (
	"errors"
	"net/http"

	"physiocare/models"
	exerciseSvc "physiocare/services/exercise"
	"physiocare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExerciseHandler exposes the exercise catalog and plan endpoints.
type ExerciseHandler struct {
	ExerciseService exerciseSvc.ExerciseService
}

// CreateExerciseHandler handles POST /api/exercises.
func (h *ExerciseHandler) CreateExerciseHandler(c *gin.Context) {
	var ex models.Exercise
	if err := c.ShouldBindJSON(&ex); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.ExerciseService.CreateExercise(c.Request.Context(), ex)
	if err != nil {
		utils.GetLogger().Error("Failed to create exercise", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Egzersiz oluşturulamadı"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListExercisesHandler handles GET /api/exercises?category=&difficulty=.
// Results come back sorted easiest first.
func (h *ExerciseHandler) ListExercisesHandler(c *gin.Context) {
	category := c.Query("category")
	difficulty := models.Difficulty(c.Query("difficulty"))

	exercises, failures, err := h.ExerciseService.ListExercises(c.Request.Context(), category, difficulty)
	if err != nil {
		utils.GetLogger().Error("Failed to list exercises", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Egzersizler yüklenemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercises": exercises, "failures": failures})
}

// GetExerciseHandler handles GET /api/exercises/:id.
func (h *ExerciseHandler) GetExerciseHandler(c *gin.Context) {
	id := c.Param("id")
	ex, err := h.ExerciseService.GetExercise(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, exerciseSvc.ErrExerciseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Egzersiz bulunamadı"})
			return
		}
		utils.GetLogger().Error("Failed to load exercise", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Egzersiz yüklenemedi"})
		return
	}
	c.JSON(http.StatusOK, ex)
}

// DeleteExerciseHandler handles DELETE /api/exercises/:id.
func (h *ExerciseHandler) DeleteExerciseHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.ExerciseService.DeleteExercise(c.Request.Context(), id); err != nil {
		if errors.Is(err, exerciseSvc.ErrExerciseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Egzersiz bulunamadı"})
			return
		}
		utils.GetLogger().Error("Failed to delete exercise", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Egzersiz silinemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// CreatePlanHandler handles POST /api/plans. The caller is recorded as the
// assigning physiotherapist.
func (h *ExerciseHandler) CreatePlanHandler(c *gin.Context) {
	var plan models.ExercisePlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	plan.PhysiotherapistID = c.GetString("userID")

	id, err := h.ExerciseService.CreatePlan(c.Request.Context(), plan)
	if err != nil {
		utils.GetLogger().Error("Failed to create plan", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Egzersiz planı oluşturulamadı"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// GetPlanHandler handles GET /api/plans/:id.
func (h *ExerciseHandler) GetPlanHandler(c *gin.Context) {
	id := c.Param("id")
	plan, err := h.ExerciseService.GetPlan(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, exerciseSvc.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Egzersiz planı bulunamadı"})
			return
		}
		utils.GetLogger().Error("Failed to load plan", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Egzersiz planı yüklenemedi"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// UpdatePlanHandler handles PUT /api/plans/:id.
func (h *ExerciseHandler) UpdatePlanHandler(c *gin.Context) {
	var plan models.ExercisePlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	plan.ID = c.Param("id")

	if err := h.ExerciseService.UpdatePlan(c.Request.Context(), plan); err != nil {
		if errors.Is(err, exerciseSvc.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Egzersiz planı bulunamadı"})
			return
		}
		utils.GetLogger().Error("Failed to update plan", zap.String("id", plan.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Egzersiz planı güncellenemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": plan.ID})
}

// UpdatePlanStatusHandler handles PUT /api/plans/:id/status.
func (h *ExerciseHandler) UpdatePlanStatusHandler(c *gin.Context) {
	var input struct {
		Status models.PlanStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.ExerciseService.UpdatePlanStatus(c.Request.Context(), id, input.Status); err != nil {
		if errors.Is(err, exerciseSvc.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Egzersiz planı bulunamadı"})
			return
		}
		utils.GetLogger().Error("Failed to update plan status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Plan durumu güncellenemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": input.Status})
}

// DeletePlanHandler handles DELETE /api/plans/:id.
func (h *ExerciseHandler) DeletePlanHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.ExerciseService.DeletePlan(c.Request.Context(), id); err != nil {
		if errors.Is(err, exerciseSvc.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Egzersiz planı bulunamadı"})
			return
		}
		utils.GetLogger().Error("Failed to delete plan", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Egzersiz planı silinemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// ListPlansHandler handles GET /api/plans. Physiotherapists see the plans
// they assigned, patients see the plans assigned to them.
func (h *ExerciseHandler) ListPlansHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var (
		plans    []models.ExercisePlan
		failures []models.DecodeFailure
		err      error
	)
	if c.GetString("role") == string(models.RolePhysiotherapist) {
		plans, failures, err = h.ExerciseService.PlansForPhysiotherapist(c.Request.Context(), userID)
	} else {
		plans, failures, err = h.ExerciseService.PlansForPatient(c.Request.Context(), userID)
	}
	if err != nil {
		utils.GetLogger().Error("Failed to list plans", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Egzersiz planları yüklenemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans, "failures": failures})
}
