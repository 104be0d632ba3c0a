package dto

// ── 档案模块 DTO ──

// CreateProfileRequest 创建档案请求
type CreateProfileRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// RenameProfileRequest 重命名档案请求
type RenameProfileRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// ProfileResponse 档案摘要响应（列表用，不含学期明细）
type ProfileResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	IsActive      bool   `json:"is_active"`
	SemesterCount int    `json:"semester_count"`
	CourseCount   int    `json:"course_count"`
	CreatedAt     string `json:"created_at"`
}

// ProfileDetailResponse 档案详情响应（含完整学期/课程树）
type ProfileDetailResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	CreatedAt string             `json:"created_at"`
	Semesters []SemesterResponse `json:"semesters"`
}

// ActiveProfileResponse 活动档案响应
// Hydrated 用于前端区分"还在加载"与"确实没有档案"
type ActiveProfileResponse struct {
	Hydrated bool                   `json:"hydrated"`
	Profile  *ProfileDetailResponse `json:"profile"`
}
