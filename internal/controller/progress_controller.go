package controller

import (
	"errors"
	"strconv"

	"finlearn_backend/internal/repository"
	"finlearn_backend/internal/service"
	"finlearn_backend/internal/util"
	"finlearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// GetProfile godoc
// @Summary Fetch profile and progress
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} object "success, profile, progress"
// @Failure 401 {object} object
// @Router /profile [get]
func (c *ProgressController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, rec, err := c.ProgressService.Profile(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			util.NotFound(ctx, "profile not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"profile":  profile,
		"progress": rec,
	})
}

// swagger:model ProgressRequest
type ProgressRequest struct {
	LessonID  string `json:"lessonId" binding:"required"`
	ModuleID  *int   `json:"moduleId" binding:"required"`
	QuizScore *int   `json:"quizScore"`
}

// PostProgress godoc
// @Summary Record a lesson completion
// @Description Read-modify-write of the progress record; recomputes the total score and bumps lastActive
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ProgressRequest true "completion"
// @Success 200 {object} object "success and updated progress"
// @Failure 400 {object} object
// @Router /progress [post]
func (c *ProgressController) PostProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rec, err := c.ProgressService.RecordProgress(ctx.Request.Context(), claims.UserID, req.LessonID, *req.ModuleID, req.QuizScore)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.BadRequest(ctx, "unknown lesson")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.LessonCompletions.WithLabelValues(strconv.Itoa(*req.ModuleID)).Inc()

	util.Success(ctx, gin.H{"progress": rec})
}

// swagger:model PositionRequest
type PositionRequest struct {
	ModuleID *int `json:"moduleId" binding:"required"`
	LessonID *int `json:"lessonId" binding:"required"`
}

// PostPosition godoc
// @Summary Store the learner's current position
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body PositionRequest true "position"
// @Success 200 {object} object
// @Failure 400 {object} object
// @Router /position [post]
func (c *ProgressController) PostPosition(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req PositionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if _, err := c.ProgressService.SetPosition(ctx.Request.Context(), claims.UserID, *req.ModuleID, *req.LessonID); err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.BadRequest(ctx, "unknown position")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{})
}
