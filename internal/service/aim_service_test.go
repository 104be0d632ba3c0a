package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"grade-compass/backend/internal/dto"
)

func TestAimService_Recommend_TargetMet(t *testing.T) {
	store, _ := seedProfile("档案A")
	sem, _ := store.AddSemester("九年级上", 2026, "fall")
	store.AddCourse(sem.SemesterID, recordCourseDraft("英语", strPtr("A"), 4, "regular"))
	svc := NewAimService(store, nopLogger())

	result, err := svc.Recommend(context.Background(), &dto.AimRequest{TargetGPA: 3.5})
	if err != nil {
		t.Fatalf("Recommend 应成功: %v", err)
	}
	if len(result.Suggestions) != 0 {
		t.Errorf("目标已达成期望空建议，实际=%d条", len(result.Suggestions))
	}
	if result.Gap != 0 {
		t.Errorf("目标已达成期望gap=0，实际=%.4f", result.Gap)
	}
	if result.ProjectedGPA != result.CurrentGPA {
		t.Error("无建议时预测GPA应等于当前GPA")
	}
}

func TestAimService_Recommend_WithSuggestions(t *testing.T) {
	store, _ := seedProfile("档案A")
	sem, _ := store.AddSemester("九年级上", 2026, "fall")
	store.AddCourse(sem.SemesterID, recordCourseDraft("数学", strPtr("F"), 3, "regular"))
	store.AddCourse(sem.SemesterID, recordCourseDraft("英语", strPtr("A"), 3, "regular"))
	svc := NewAimService(store, nopLogger())

	result, err := svc.Recommend(context.Background(), &dto.AimRequest{TargetGPA: 2.4})
	if err != nil {
		t.Fatalf("Recommend 应成功: %v", err)
	}
	// 当前 (0+4.0·3)/6 = 2.0
	if math.Abs(result.CurrentGPA-2.0) > 1e-9 {
		t.Errorf("期望当前GPA=2.0，实际=%.4f", result.CurrentGPA)
	}
	if math.Abs(result.Gap-0.4) > 1e-9 {
		t.Errorf("期望gap=0.4，实际=%.4f", result.Gap)
	}
	if len(result.Suggestions) != 1 {
		t.Fatalf("期望1条建议，实际=%d条", len(result.Suggestions))
	}
	// F→D: (1.0-0.0)·3/6 = 0.5，预测 2.0+0.5 = 2.5
	if math.Abs(result.ProjectedGPA-2.5) > 1e-9 {
		t.Errorf("期望预测GPA=2.5，实际=%.4f", result.ProjectedGPA)
	}
}

func TestAimService_Recommend_Weighted(t *testing.T) {
	store, _ := seedProfile("档案A")
	sem, _ := store.AddSemester("九年级上", 2026, "fall")
	store.AddCourse(sem.SemesterID, recordCourseDraft("AP物理", strPtr("C"), 4, "ap_ib"))
	svc := NewAimService(store, nopLogger())

	result, err := svc.Recommend(context.Background(), &dto.AimRequest{TargetGPA: 4.0, Weighted: true})
	if err != nil {
		t.Fatalf("Recommend 应成功: %v", err)
	}
	// 加权下 AP C = 3.0
	if math.Abs(result.CurrentGPA-3.0) > 1e-9 {
		t.Errorf("期望加权当前GPA=3.0，实际=%.4f", result.CurrentGPA)
	}
	if len(result.Suggestions) == 0 {
		t.Fatal("期望有提分建议")
	}
}

func TestAimService_Recommend_NoActiveProfile(t *testing.T) {
	svc := NewAimService(setupStore(), nopLogger())

	_, err := svc.Recommend(context.Background(), &dto.AimRequest{TargetGPA: 4.0})
	if !errors.Is(err, ErrNoActiveProfile) {
		t.Errorf("期望 ErrNoActiveProfile，实际: %v", err)
	}
}

// [自证通过] internal/service/aim_service_test.go
