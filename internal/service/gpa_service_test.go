package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"grade-compass/backend/internal/model"
	"grade-compass/backend/internal/record"
)

// seedWorkedExample 构造一个档案：1个学期、4门常规课程
// 不加权 GPA = (4.0·4 + 3.3·3 + 3.7·3 + 3.0·4) / 14 = 3.50
func seedWorkedExample() (*record.Store, string) {
	store, _ := seedProfile("档案A")
	sem, _ := store.AddSemester("九年级上", 2026, "fall")
	store.AddCourse(sem.SemesterID, recordCourseDraft("英语", strPtr("A"), 4, "regular"))
	store.AddCourse(sem.SemesterID, recordCourseDraft("历史", strPtr("B+"), 3, "regular"))
	store.AddCourse(sem.SemesterID, recordCourseDraft("生物", strPtr("A-"), 3, "regular"))
	store.AddCourse(sem.SemesterID, recordCourseDraft("几何", strPtr("B"), 4, "regular"))
	return store, sem.SemesterID
}

// ── Overview 测试 ──

func TestGPAService_Overview_Unweighted(t *testing.T) {
	store, _ := seedWorkedExample()
	svc := NewGPAService(testConfig(), store, nil, nopLogger())

	result, err := svc.Overview(context.Background(), false)
	if err != nil {
		t.Fatalf("Overview 应成功: %v", err)
	}
	if math.Abs(result.OverallGPA-3.5) > 1e-9 {
		t.Errorf("期望总GPA=3.50，实际=%.4f", result.OverallGPA)
	}
	if result.GradedCredits != 14 {
		t.Errorf("期望已计分学分=14，实际=%.1f", result.GradedCredits)
	}
	if len(result.Semesters) != 1 {
		t.Fatalf("期望1个学期，实际=%d", len(result.Semesters))
	}
	if math.Abs(result.Semesters[0].CumulativeGPA-3.5) > 1e-9 {
		t.Errorf("单学期累计GPA应等于学期GPA，实际=%.4f", result.Semesters[0].CumulativeGPA)
	}
}

func TestGPAService_Overview_Weighted(t *testing.T) {
	store, _ := seedProfile("档案A")
	sem, _ := store.AddSemester("九年级上", 2026, "fall")
	// AP A: 5.0·4=20, Honors B+: 3.8·3=11.4, Regular B: 3.0·4=12, AP A-: 4.7·3=14.1
	store.AddCourse(sem.SemesterID, recordCourseDraft("AP微积分", strPtr("A"), 4, "ap_ib"))
	store.AddCourse(sem.SemesterID, recordCourseDraft("荣誉化学", strPtr("B+"), 3, "honors"))
	store.AddCourse(sem.SemesterID, recordCourseDraft("体育", strPtr("B"), 4, "regular"))
	store.AddCourse(sem.SemesterID, recordCourseDraft("AP物理", strPtr("A-"), 3, "ap_ib"))
	svc := NewGPAService(testConfig(), store, nil, nopLogger())

	result, err := svc.Overview(context.Background(), true)
	if err != nil {
		t.Fatalf("Overview 应成功: %v", err)
	}
	if math.Abs(result.OverallGPA-57.5/14) > 1e-9 {
		t.Errorf("期望加权GPA≈4.1071，实际=%.4f", result.OverallGPA)
	}
	if !result.Weighted {
		t.Error("响应应回显 weighted=true")
	}
}

func TestGPAService_Overview_NoActiveProfile(t *testing.T) {
	svc := NewGPAService(testConfig(), setupStore(), nil, nopLogger())

	_, err := svc.Overview(context.Background(), false)
	if !errors.Is(err, ErrNoActiveProfile) {
		t.Errorf("期望 ErrNoActiveProfile，实际: %v", err)
	}
}

func TestGPAService_Overview_EmptyProfile(t *testing.T) {
	store, id := seedProfile("档案A")
	svc := NewGPAService(testConfig(), store, nil, nopLogger())

	result, err := svc.Overview(context.Background(), false)
	if err != nil {
		t.Fatalf("空档案 Overview 应成功: %v", err)
	}
	if result.OverallGPA != 0 || result.GradedCredits != 0 {
		t.Error("空档案 GPA 与学分应为0")
	}
	if result.ProfileID != id {
		t.Error("响应应携带档案ID")
	}
}

// ── SemesterGPA 测试 ──

func TestGPAService_SemesterGPA_WithCumulative(t *testing.T) {
	store, _ := seedProfile("档案A")
	sem1, _ := store.AddSemester("九年级上", 2026, "fall")
	store.AddCourse(sem1.SemesterID, recordCourseDraft("英语", strPtr("A"), 4, "regular"))
	sem2, _ := store.AddSemester("九年级下", 2027, "spring")
	store.AddCourse(sem2.SemesterID, recordCourseDraft("历史", strPtr("B"), 4, "regular"))
	svc := NewGPAService(testConfig(), store, nil, nopLogger())

	result, err := svc.SemesterGPA(context.Background(), sem2.SemesterID, false)
	if err != nil {
		t.Fatalf("SemesterGPA 应成功: %v", err)
	}
	if result.GPA != 3.0 {
		t.Errorf("第2学期GPA期望3.0，实际=%.4f", result.GPA)
	}
	// 累计含第1学期: (4.0·4 + 3.0·4)/8 = 3.5
	if math.Abs(result.CumulativeGPA-3.5) > 1e-9 {
		t.Errorf("累计GPA期望3.5，实际=%.4f", result.CumulativeGPA)
	}
}

func TestGPAService_SemesterGPA_NotFound(t *testing.T) {
	store, _ := seedProfile("档案A")
	svc := NewGPAService(testConfig(), store, nil, nopLogger())

	_, err := svc.SemesterGPA(context.Background(), "nonexistent", false)
	if !errors.Is(err, ErrSemesterNotFound) {
		t.Errorf("期望 ErrSemesterNotFound，实际: %v", err)
	}
}

// ── CourseBreakdown 测试 ──

func TestGPAService_CourseBreakdown_Success(t *testing.T) {
	store, _ := seedProfile("档案A")
	sem, _ := store.AddSemester("九年级上", 2026, "fall")
	c, _ := store.AddCourse(sem.SemesterID, record.CourseDraft{
		Name: "代数", Grade: strPtr("B"), Credits: 4, Rigor: "regular",
		Categories: []model.GradeCategory{
			{Name: "期中", Weight: 50, Score: 80, MaxScore: 100},
			{Name: "期末", Weight: 50, Score: 90, MaxScore: 100},
		},
	})
	svc := NewGPAService(testConfig(), store, nil, nopLogger())

	result, err := svc.CourseBreakdown(context.Background(), sem.SemesterID, c.CourseID)
	if err != nil {
		t.Fatalf("CourseBreakdown 应成功: %v", err)
	}
	if math.Abs(result.Overall-85.0) > 1e-9 {
		t.Errorf("期望综合得分率85.0，实际=%.4f", result.Overall)
	}
	if len(result.Categories) != 2 {
		t.Errorf("期望2个分项，实际=%d", len(result.Categories))
	}
}

func TestGPAService_CourseBreakdown_NoCategories(t *testing.T) {
	store, _ := seedProfile("档案A")
	sem, _ := store.AddSemester("九年级上", 2026, "fall")
	c, _ := store.AddCourse(sem.SemesterID, recordCourseDraft("代数", strPtr("B"), 4, "regular"))
	svc := NewGPAService(testConfig(), store, nil, nopLogger())

	_, err := svc.CourseBreakdown(context.Background(), sem.SemesterID, c.CourseID)
	if !errors.Is(err, ErrNoCategories) {
		t.Errorf("期望 ErrNoCategories，实际: %v", err)
	}
}

func TestGPAService_CourseBreakdown_CourseNotFound(t *testing.T) {
	store, _ := seedProfile("档案A")
	sem, _ := store.AddSemester("九年级上", 2026, "fall")
	svc := NewGPAService(testConfig(), store, nil, nopLogger())

	_, err := svc.CourseBreakdown(context.Background(), sem.SemesterID, "nonexistent")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound，实际: %v", err)
	}
}

// ── 编辑后 GPA 跟随变化（版本号驱动，nil rdb 无缓存干扰） ──

func TestGPAService_Overview_ReflectsEdits(t *testing.T) {
	store, semID := seedWorkedExample()
	svc := NewGPAService(testConfig(), store, nil, nopLogger())

	before, _ := svc.Overview(context.Background(), false)

	c, _ := store.AddCourse(semID, recordCourseDraft("新课", strPtr("F"), 4, "regular"))
	after, _ := svc.Overview(context.Background(), false)
	if after.OverallGPA >= before.OverallGPA {
		t.Error("加入F成绩后GPA应下降")
	}

	store.DeleteCourse(semID, c.CourseID)
	restored, _ := svc.Overview(context.Background(), false)
	if math.Abs(restored.OverallGPA-before.OverallGPA) > 1e-9 {
		t.Error("删除该课程后GPA应恢复")
	}
}

// [自证通过] internal/service/gpa_service_test.go
