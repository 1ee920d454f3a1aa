package controller

import (
	"errors"
	"strconv"

	"finlearn_backend/internal/repository"
	"finlearn_backend/internal/service"
	"finlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CurriculumController struct {
	CurriculumService *service.CurriculumService
	ProgressService   *service.ProgressService
}

func NewCurriculumController(curriculumService *service.CurriculumService, progressService *service.ProgressService) *CurriculumController {
	return &CurriculumController{
		CurriculumService: curriculumService,
		ProgressService:   progressService,
	}
}

// GetModules godoc
// @Summary Module roadmap with unlock and completion status
// @Tags curriculum
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} object "success and modules"
// @Failure 404 {object} object
// @Router /modules [get]
func (c *CurriculumController) GetModules(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	_, rec, err := c.ProgressService.Profile(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			util.NotFound(ctx, "profile not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"modules": c.CurriculumService.Overview(rec)})
}

// GetLesson godoc
// @Summary Full lesson content
// @Tags curriculum
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module index"
// @Param lessonId path int true "lesson index"
// @Success 200 {object} object "success and lesson"
// @Failure 404 {object} object
// @Router /modules/{moduleId}/lessons/{lessonId} [get]
func (c *CurriculumController) GetLesson(ctx *gin.Context) {
	moduleIdx, lessonIdx, ok := lessonParams(ctx)
	if !ok {
		return
	}

	l, err := c.CurriculumService.Lesson(moduleIdx, lessonIdx)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx, "lesson not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"lesson": l})
}

// GetCheatSheet godoc
// @Summary Cheat sheet text download
// @Tags curriculum
// @Produce plain
// @Security ApiKeyAuth
// @Param moduleId path int true "module index"
// @Param lessonId path int true "lesson index"
// @Success 200 {string} string
// @Failure 404 {object} object
// @Router /modules/{moduleId}/lessons/{lessonId}/cheatsheet [get]
func (c *CurriculumController) GetCheatSheet(ctx *gin.Context) {
	moduleIdx, lessonIdx, ok := lessonParams(ctx)
	if !ok {
		return
	}

	filename, text, err := c.CurriculumService.CheatSheet(ctx.Request.Context(), moduleIdx, lessonIdx)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx, "lesson not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(200, "text/plain; charset=utf-8", []byte(text))
}

func lessonParams(ctx *gin.Context) (moduleIdx, lessonIdx int, ok bool) {
	moduleIdx, err := strconv.Atoi(ctx.Param("moduleId"))
	if err != nil || moduleIdx < 0 {
		util.BadRequest(ctx, "invalid module id")
		return 0, 0, false
	}
	lessonIdx, err = strconv.Atoi(ctx.Param("lessonId"))
	if err != nil || lessonIdx < 0 {
		util.BadRequest(ctx, "invalid lesson id")
		return 0, 0, false
	}
	return moduleIdx, lessonIdx, true
}
