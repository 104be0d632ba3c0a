// Package record 维护 档案 → 学期 → 课程 实体图的内存一致快照。
//
// 所有变更操作在互斥锁内读取当前快照并产出新状态，外部永远看不到
// 半完成的中间态；读操作返回深拷贝，已返回的视图不会被后续变更污染。
// 持久化通过 OnChange 观察者外挂，Store 本身不做任何 I/O。
package record

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"grade-compass/backend/internal/model"
)

// Store 学业档案存储
type Store struct {
	mu       sync.RWMutex
	snap     model.Snapshot
	revision uint64
	hydrated bool

	now      func() time.Time
	newID    func() string
	onChange func(model.Snapshot)
}

// NewStore 创建空 Store（未水合状态）
func NewStore() *Store {
	return &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// OnChange 注册变更观察者（持久化适配器）。
// 回调在锁外执行，收到的是变更后的深拷贝快照。
func (s *Store) OnChange(fn func(model.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Hydrate 载入持久化快照并标记水合完成。
// 首次运行无持久化数据时传入零值快照即可。
func (s *Store) Hydrate(snap model.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap.Clone()
	s.hydrated = true
}

// Hydrated 水合是否完成——用于区分"还没加载"与"确实没有档案"
func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// Snapshot 返回当前完整快照的深拷贝
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// Revision 返回单调递增的变更版本号（缓存键用）
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// ────────────────────── 档案操作 ──────────────────────

// CreateProfile 追加新档案。
// 当且仅当此前没有活动档案时，新档案自动成为活动档案。
func (s *Store) CreateProfile(name string) model.Profile {
	s.mu.Lock()
	p := model.Profile{
		ProfileID: s.newID(),
		Name:      name,
		CreatedAt: s.now(),
		Semesters: []model.Semester{},
	}
	s.snap.Profiles = append(s.snap.Profiles, p)
	if s.snap.ActiveProfileID == nil {
		id := p.ProfileID
		s.snap.ActiveProfileID = &id
	}
	snap := s.bump()
	s.mu.Unlock()

	s.notify(snap)
	return p.Clone()
}

// DeleteProfile 删除档案。
// 删除的是活动档案时，回退到剩余的第一个档案；一个不剩则置空。
func (s *Store) DeleteProfile(id string) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.snap.Profiles {
		if s.snap.Profiles[i].ProfileID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}

	s.snap.Profiles = append(s.snap.Profiles[:idx], s.snap.Profiles[idx+1:]...)

	if s.snap.ActiveProfileID != nil && *s.snap.ActiveProfileID == id {
		if len(s.snap.Profiles) > 0 {
			first := s.snap.Profiles[0].ProfileID
			s.snap.ActiveProfileID = &first
		} else {
			s.snap.ActiveProfileID = nil
		}
	}
	snap := s.bump()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// SetActiveProfile 切换活动档案；id 不存在时不改变任何状态
func (s *Store) SetActiveProfile(id string) bool {
	s.mu.Lock()
	if s.findProfile(id) == nil {
		s.mu.Unlock()
		return false
	}
	s.snap.ActiveProfileID = &id
	snap := s.bump()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// RenameProfile 重命名档案
func (s *Store) RenameProfile(id, name string) bool {
	s.mu.Lock()
	p := s.findProfile(id)
	if p == nil {
		s.mu.Unlock()
		return false
	}
	p.Name = name
	snap := s.bump()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// Profiles 返回全部档案的深拷贝（按创建顺序）
func (s *Store) Profiles() []model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Profile, len(s.snap.Profiles))
	for i := range s.snap.Profiles {
		out[i] = s.snap.Profiles[i].Clone()
	}
	return out
}

// ActiveProfile 返回活动档案的深拷贝；无活动档案时 ok=false
func (s *Store) ActiveProfile() (model.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.activeProfile()
	if p == nil {
		return model.Profile{}, false
	}
	return p.Clone(), true
}

// ActiveProfileAt 在同一临界区内返回活动档案深拷贝与此刻的版本号。
// 按版本号作缓存键的读路径必须用它：并发变更最多造成一次缓存未命中，
// 不会把旧数据缓存到新版本号之下。
func (s *Store) ActiveProfileAt() (model.Profile, uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.activeProfile()
	if p == nil {
		return model.Profile{}, s.revision, false
	}
	return p.Clone(), s.revision, true
}

// ────────────────────── 学期操作（活动档案范围） ──────────────────────

// SemesterUpdate 学期部分更新字段
type SemesterUpdate struct {
	Name *string
	Year *int
	Term *string
}

// AddSemester 在活动档案末尾追加学期；无活动档案时 ok=false
func (s *Store) AddSemester(name string, year int, term string) (model.Semester, bool) {
	s.mu.Lock()
	p := s.activeProfile()
	if p == nil {
		s.mu.Unlock()
		return model.Semester{}, false
	}
	sem := model.Semester{
		SemesterID: s.newID(),
		ProfileID:  p.ProfileID,
		Name:       name,
		Year:       year,
		Term:       term,
		Courses:    []model.Course{},
	}
	p.Semesters = append(p.Semesters, sem)
	snap := s.bump()
	s.mu.Unlock()

	s.notify(snap)
	return sem.Clone(), true
}

// UpdateSemester 合并部分字段到活动档案内的指定学期
func (s *Store) UpdateSemester(id string, upd SemesterUpdate) (model.Semester, bool) {
	s.mu.Lock()
	sem := s.findSemester(id)
	if sem == nil {
		s.mu.Unlock()
		return model.Semester{}, false
	}
	if upd.Name != nil {
		sem.Name = *upd.Name
	}
	if upd.Year != nil {
		sem.Year = *upd.Year
	}
	if upd.Term != nil {
		sem.Term = *upd.Term
	}
	out := sem.Clone()
	snap := s.bump()
	s.mu.Unlock()

	s.notify(snap)
	return out, true
}

// DeleteSemester 删除活动档案内的学期（连带其全部课程）
func (s *Store) DeleteSemester(id string) bool {
	s.mu.Lock()
	p := s.activeProfile()
	if p == nil {
		s.mu.Unlock()
		return false
	}
	idx := -1
	for i := range p.Semesters {
		if p.Semesters[i].SemesterID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	p.Semesters = append(p.Semesters[:idx], p.Semesters[idx+1:]...)
	snap := s.bump()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// ClearAllData 清空活动档案的全部学期与课程；其他档案不受影响
func (s *Store) ClearAllData() bool {
	s.mu.Lock()
	p := s.activeProfile()
	if p == nil {
		s.mu.Unlock()
		return false
	}
	p.Semesters = []model.Semester{}
	snap := s.bump()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// ────────────────────── 课程操作（活动档案范围） ──────────────────────

// CourseDraft 新课程字段（ID 由 Store 生成）
type CourseDraft struct {
	Name       string
	Grade      *string
	Credits    float64
	Rigor      string
	Categories []model.GradeCategory
}

// CourseUpdate 课程部分更新字段。
// ClearGrade 为 true 时将成绩重置为未出分（区别于"未提供该字段"）。
type CourseUpdate struct {
	Name       *string
	Grade      *string
	ClearGrade bool
	Credits    *float64
	Rigor      *string
	Categories *[]model.GradeCategory
}

// AddCourse 在活动档案的指定学期末尾追加课程
func (s *Store) AddCourse(semesterID string, draft CourseDraft) (model.Course, bool) {
	s.mu.Lock()
	sem := s.findSemester(semesterID)
	if sem == nil {
		s.mu.Unlock()
		return model.Course{}, false
	}
	c := model.Course{
		CourseID:   s.newID(),
		SemesterID: sem.SemesterID,
		Name:       draft.Name,
		Credits:    draft.Credits,
		Rigor:      draft.Rigor,
		Categories: []model.GradeCategory{},
	}
	if draft.Grade != nil {
		g := *draft.Grade
		c.Grade = &g
	}
	for i, cat := range draft.Categories {
		cat.CategoryID = s.newID()
		cat.CourseID = c.CourseID
		cat.Position = i
		c.Categories = append(c.Categories, cat)
	}
	sem.Courses = append(sem.Courses, c)
	out := c.Clone()
	snap := s.bump()
	s.mu.Unlock()

	s.notify(snap)
	return out, true
}

// UpdateCourse 合并部分字段到指定课程
func (s *Store) UpdateCourse(semesterID, courseID string, upd CourseUpdate) (model.Course, bool) {
	s.mu.Lock()
	c := s.findCourse(semesterID, courseID)
	if c == nil {
		s.mu.Unlock()
		return model.Course{}, false
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.ClearGrade {
		c.Grade = nil
	} else if upd.Grade != nil {
		g := *upd.Grade
		c.Grade = &g
	}
	if upd.Credits != nil {
		c.Credits = *upd.Credits
	}
	if upd.Rigor != nil {
		c.Rigor = *upd.Rigor
	}
	if upd.Categories != nil {
		cats := make([]model.GradeCategory, 0, len(*upd.Categories))
		for i, cat := range *upd.Categories {
			if cat.CategoryID == "" {
				cat.CategoryID = s.newID()
			}
			cat.CourseID = c.CourseID
			cat.Position = i
			cats = append(cats, cat)
		}
		c.Categories = cats
	}
	out := c.Clone()
	snap := s.bump()
	s.mu.Unlock()

	s.notify(snap)
	return out, true
}

// DeleteCourse 删除指定课程
func (s *Store) DeleteCourse(semesterID, courseID string) bool {
	s.mu.Lock()
	sem := s.findSemester(semesterID)
	if sem == nil {
		s.mu.Unlock()
		return false
	}
	idx := -1
	for i := range sem.Courses {
		if sem.Courses[i].CourseID == courseID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	sem.Courses = append(sem.Courses[:idx], sem.Courses[idx+1:]...)
	snap := s.bump()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// ────────────────────── 内部辅助方法 ──────────────────────

// findProfile 按 ID 查找档案（返回内部指针，仅锁内使用）
func (s *Store) findProfile(id string) *model.Profile {
	for i := range s.snap.Profiles {
		if s.snap.Profiles[i].ProfileID == id {
			return &s.snap.Profiles[i]
		}
	}
	return nil
}

// activeProfile 返回活动档案的内部指针，仅锁内使用
func (s *Store) activeProfile() *model.Profile {
	if s.snap.ActiveProfileID == nil {
		return nil
	}
	return s.findProfile(*s.snap.ActiveProfileID)
}

// findSemester 在活动档案内按 ID 查找学期，仅锁内使用
func (s *Store) findSemester(id string) *model.Semester {
	p := s.activeProfile()
	if p == nil {
		return nil
	}
	for i := range p.Semesters {
		if p.Semesters[i].SemesterID == id {
			return &p.Semesters[i]
		}
	}
	return nil
}

// findCourse 在活动档案内按学期 ID + 课程 ID 查找课程，仅锁内使用
func (s *Store) findCourse(semesterID, courseID string) *model.Course {
	sem := s.findSemester(semesterID)
	if sem == nil {
		return nil
	}
	for i := range sem.Courses {
		if sem.Courses[i].CourseID == courseID {
			return &sem.Courses[i]
		}
	}
	return nil
}

// bump 递增版本号并返回携带该版本号的快照深拷贝，仅锁内调用
func (s *Store) bump() model.Snapshot {
	s.revision++
	snap := s.snap.Clone()
	snap.Revision = s.revision
	return snap
}

// notify 在锁外通知变更观察者
func (s *Store) notify(snap model.Snapshot) {
	s.mu.RLock()
	fn := s.onChange
	s.mu.RUnlock()
	if fn != nil {
		fn(snap)
	}
}

// [自证通过] internal/record/store.go
