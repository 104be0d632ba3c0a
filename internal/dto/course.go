package dto

// ── 课程模块 DTO ──

// CategoryPayload 成绩分项（请求与响应共用）
type CategoryPayload struct {
	Name     string  `json:"name"      binding:"required,min=1,max=100"`
	Weight   float64 `json:"weight"    binding:"gte=0,lte=100"`
	Score    float64 `json:"score"     binding:"gte=0"`
	MaxScore float64 `json:"max_score" binding:"gt=0"`
}

// CreateCourseRequest 创建课程请求
// Grade 为空表示尚未出分；字母成绩枚举在 Service 层校验
type CreateCourseRequest struct {
	Name       string            `json:"name"    binding:"required,min=1,max=200"`
	Grade      *string           `json:"grade"`
	Credits    float64           `json:"credits" binding:"gte=0"`
	Rigor      string            `json:"rigor"   binding:"required,oneof=regular honors ap_ib"`
	Categories []CategoryPayload `json:"categories" binding:"omitempty,dive"`
}

// UpdateCourseRequest 更新课程请求（部分字段）
// ClearGrade 为 true 时把成绩重置为未出分
type UpdateCourseRequest struct {
	Name       *string            `json:"name"    binding:"omitempty,min=1,max=200"`
	Grade      *string            `json:"grade"`
	ClearGrade bool               `json:"clear_grade"`
	Credits    *float64           `json:"credits" binding:"omitempty,gte=0"`
	Rigor      *string            `json:"rigor"   binding:"omitempty,oneof=regular honors ap_ib"`
	Categories *[]CategoryPayload `json:"categories" binding:"omitempty,dive"`
}

// CourseResponse 课程响应
type CourseResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Grade      *string           `json:"grade"`
	Credits    float64           `json:"credits"`
	Rigor      string            `json:"rigor"`
	Categories []CategoryPayload `json:"categories,omitempty"`
}
