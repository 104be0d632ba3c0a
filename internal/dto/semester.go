package dto

// ── 学期模块 DTO ──

// CreateSemesterRequest 创建学期请求
type CreateSemesterRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Year int    `json:"year" binding:"required,gte=1900,lte=2200"`
	Term string `json:"term" binding:"required,oneof=fall spring summer"`
}

// UpdateSemesterRequest 更新学期请求（部分字段）
type UpdateSemesterRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
	Year *int    `json:"year" binding:"omitempty,gte=1900,lte=2200"`
	Term *string `json:"term" binding:"omitempty,oneof=fall spring summer"`
}

// SemesterResponse 学期响应
type SemesterResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Year    int              `json:"year"`
	Term    string           `json:"term"`
	Courses []CourseResponse `json:"courses"`
}
