package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"grade-compass/backend/internal/service"
	"grade-compass/backend/pkg/response"
)

// GPAHandler GPA 模块 HTTP 处理器
type GPAHandler struct {
	gpaSvc service.GPAService
}

// NewGPAHandler 创建 GPAHandler
func NewGPAHandler(gpaSvc service.GPAService) *GPAHandler {
	return &GPAHandler{gpaSvc: gpaSvc}
}

// GetOverview 获取活动档案的 GPA 概览
// GET /api/v1/gpa/overview?weighted=true
func (h *GPAHandler) GetOverview(c *gin.Context) {
	weighted := c.DefaultQuery("weighted", "false") == "true"

	overview, err := h.gpaSvc.Overview(c.Request.Context(), weighted)
	if err != nil {
		h.handleGPAError(c, err)
		return
	}

	response.OK(c, overview)
}

// GetSemesterGPA 获取单学期 GPA（含累计 GPA）
// GET /api/v1/gpa/semesters/:id?weighted=true
func (h *GPAHandler) GetSemesterGPA(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "学期ID不能为空")
		return
	}
	weighted := c.DefaultQuery("weighted", "false") == "true"

	result, err := h.gpaSvc.SemesterGPA(c.Request.Context(), id, weighted)
	if err != nil {
		h.handleGPAError(c, err)
		return
	}

	response.OK(c, result)
}

// GetCourseBreakdown 获取课程成绩构成分析
// GET /api/v1/semesters/:id/courses/:courseId/breakdown
func (h *GPAHandler) GetCourseBreakdown(c *gin.Context) {
	semesterID := c.Param("id")
	courseID := c.Param("courseId")
	if semesterID == "" || courseID == "" {
		response.BadRequest(c, 10001, "学期ID与课程ID不能为空")
		return
	}

	result, err := h.gpaSvc.CourseBreakdown(c.Request.Context(), semesterID, courseID)
	if err != nil {
		h.handleGPAError(c, err)
		return
	}

	response.OK(c, result)
}

// handleGPAError 统一处理 GPA 模块业务错误
func (h *GPAHandler) handleGPAError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoActiveProfile):
		response.NotFound(c, 12002, "没有活动档案")
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 14001, "学期不存在")
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 15001, "课程不存在")
	case errors.Is(err, service.ErrNoCategories):
		response.BadRequest(c, 15003, "课程没有成绩分项")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/gpa_handler.go
