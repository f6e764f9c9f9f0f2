package service

import (
	"strings"

	"courseforge/internal/modules/course/domain"
	"courseforge/internal/platform/clock"
	"courseforge/internal/platform/slug"
)

// CourseService builds and updates course aggregates.
type CourseService struct {
	clk clock.Clock
}

func NewCourseService(clk clock.Clock) *CourseService {
	return &CourseService{clk: clk}
}

// NewCourse assembles a course from raw inputs. The slug is derived
// from the title and the track type defaults to "Programming".
func (s *CourseService) NewCourse(title, description, trackType string, lessons []domain.Lesson) (domain.Course, error) {
	now := s.clk.Now()
	if strings.TrimSpace(trackType) == "" {
		trackType = "Programming"
	}
	course := domain.Course{
		Slug:        slug.Make(title),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		TrackType:   trackType,
		Lessons:     lessons,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := course.Validate(); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}
