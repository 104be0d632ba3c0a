package dto

import "grade-compass/backend/internal/aim"

// ── 目标模式（Aim Mode）DTO ──

// AimRequest 目标 GPA 推荐请求
type AimRequest struct {
	TargetGPA float64 `json:"target_gpa" binding:"required,gt=0,lte=5"`
	Weighted  bool    `json:"weighted"`
}

// AimResponse 提分建议响应
// 建议是启发式估算，ProjectedGPA 仅为近似值，不保证达到目标
type AimResponse struct {
	CurrentGPA   float64          `json:"current_gpa"`
	TargetGPA    float64          `json:"target_gpa"`
	Gap          float64          `json:"gap"`
	Suggestions  []aim.Suggestion `json:"suggestions"`
	ProjectedGPA float64          `json:"projected_gpa"`
}
