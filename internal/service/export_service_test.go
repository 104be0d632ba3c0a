package service

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ── ExportTranscript 测试 ──

func TestExportService_ExportTranscript_NoActiveProfile(t *testing.T) {
	svc := NewExportService(setupStore(), nopLogger())

	_, _, err := svc.ExportTranscript(context.Background())
	if !errors.Is(err, ErrNoActiveProfile) {
		t.Errorf("期望 ErrNoActiveProfile，实际: %v", err)
	}
}

func TestExportService_ExportTranscript_NoSemesters(t *testing.T) {
	store, _ := seedProfile("档案A")
	svc := NewExportService(store, nopLogger())

	_, _, err := svc.ExportTranscript(context.Background())
	if !errors.Is(err, ErrExportNoSemesters) {
		t.Errorf("期望 ErrExportNoSemesters，实际: %v", err)
	}
}

func TestExportService_ExportTranscript_Success(t *testing.T) {
	store, _ := seedProfile("申请档案")
	sem, _ := store.AddSemester("九年级上", 2026, "fall")
	store.AddCourse(sem.SemesterID, recordCourseDraft("AP微积分", strPtr("A"), 4, "ap_ib"))
	store.AddCourse(sem.SemesterID, recordCourseDraft("化学", nil, 3, "regular"))
	svc := NewExportService(store, nopLogger())

	buf, filename, err := svc.ExportTranscript(context.Background())
	if err != nil {
		t.Fatalf("ExportTranscript 应成功: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Error("导出的 Excel buffer 不应为空")
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名应以 .xlsx 结尾: %s", filename)
	}
	// Excel .xlsx 文件以 PK (0x504B) 开头
	if buf.Len() > 2 {
		header := buf.Bytes()[:2]
		if header[0] != 0x50 || header[1] != 0x4B {
			t.Error("输出内容不是有效的 xlsx 文件格式（应以 PK 开头）")
		}
	}
}

// ── ExportCalendar 测试 ──

func TestExportService_ExportCalendar_NoSemesters(t *testing.T) {
	store, _ := seedProfile("档案A")
	svc := NewExportService(store, nopLogger())

	_, _, err := svc.ExportCalendar(context.Background())
	if !errors.Is(err, ErrExportNoSemesters) {
		t.Errorf("期望 ErrExportNoSemesters，实际: %v", err)
	}
}

func TestExportService_ExportCalendar_Success(t *testing.T) {
	store, _ := seedProfile("申请档案")
	store.AddSemester("九年级上", 2026, "fall")
	store.AddSemester("九年级下", 2027, "spring")
	svc := NewExportService(store, nopLogger())

	buf, filename, err := svc.ExportCalendar(context.Background())
	if err != nil {
		t.Fatalf("ExportCalendar 应成功: %v", err)
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("文件名应以 .ics 结尾: %s", filename)
	}

	content := buf.String()
	if !strings.Contains(content, "BEGIN:VCALENDAR") {
		t.Error("输出应为 iCalendar 格式")
	}
	if strings.Count(content, "BEGIN:VEVENT") != 2 {
		t.Errorf("期望2个学期事件，实际=%d", strings.Count(content, "BEGIN:VEVENT"))
	}
	if !strings.Contains(content, "九年级上") {
		t.Error("事件摘要应包含学期名称")
	}
}

// [自证通过] internal/service/export_service_test.go
