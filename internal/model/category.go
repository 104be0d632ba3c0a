package model

// GradeCategory 课程成绩分项（如"期中 30%"）— 对应 grade_categories 表
// 仅用于课程内部成绩构成分析，不参与 GPA 计算。
type GradeCategory struct {
	CategoryID string  `gorm:"type:uuid;primaryKey"       json:"category_id"`
	CourseID   string  `gorm:"type:uuid;not null;index"   json:"-"`
	Name       string  `gorm:"type:varchar(100);not null" json:"name"`
	Weight     float64 `gorm:"type:numeric(5,2);not null" json:"weight"` // 权重百分比
	Score      float64 `gorm:"type:numeric(8,2);not null" json:"score"`
	MaxScore   float64 `gorm:"type:numeric(8,2);not null;default:100" json:"max_score"`
	Position   int     `gorm:"not null;default:0"         json:"-"`
}

// TableName 指定表名
func (GradeCategory) TableName() string { return "grade_categories" }
