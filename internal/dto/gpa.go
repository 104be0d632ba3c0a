package dto

import "grade-compass/backend/internal/gpa"

// ── GPA 模块 DTO ──

// SemesterGPAResponse 单学期 GPA（含截至该学期的累计 GPA，展示趋势用）
type SemesterGPAResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Year          int     `json:"year"`
	Term          string  `json:"term"`
	GPA           float64 `json:"gpa"`
	Credits       float64 `json:"credits"` // 已出分学分
	CumulativeGPA float64 `json:"cumulative_gpa"`
}

// GPAOverviewResponse 档案 GPA 概览
type GPAOverviewResponse struct {
	ProfileID     string                `json:"profile_id"`
	Weighted      bool                  `json:"weighted"`
	OverallGPA    float64               `json:"overall_gpa"`
	GradedCredits float64               `json:"graded_credits"`
	Semesters     []SemesterGPAResponse `json:"semesters"`
}

// CourseBreakdownResponse 课程成绩构成分析响应
type CourseBreakdownResponse struct {
	CourseID   string               `json:"course_id"`
	CourseName string               `json:"course_name"`
	Overall    float64              `json:"overall"` // 权重归一综合得分率
	Categories []gpa.CategoryResult `json:"categories"`
}
