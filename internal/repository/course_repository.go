package repository

import (
	"context"

	"github.com/maplewood/student-portal/internal/dto"
	"github.com/maplewood/student-portal/internal/models"
)

// CourseRepository reads the course catalogs from the backend. All three
// listings are independent, idempotent GETs and safe to issue concurrently.
type CourseRepository struct {
	client *Client
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(client *Client) *CourseRepository {
	return &CourseRepository{client: client}
}

// ListCourses returns the full catalog.
func (r *CourseRepository) ListCourses(ctx context.Context) ([]models.CourseInfo, error) {
	var payload []dto.CourseDTO
	if err := r.client.getJSON(ctx, "/api/courses/", "courses", &payload); err != nil {
		return nil, err
	}
	return dto.CoursesToModels(payload), nil
}

// ListSemesterCourses returns courses offered in the active semester.
func (r *CourseRepository) ListSemesterCourses(ctx context.Context) ([]models.CourseInfo, error) {
	var payload []dto.CourseDTO
	if err := r.client.getJSON(ctx, "/api/courses/semester", "semester courses", &payload); err != nil {
		return nil, err
	}
	return dto.CoursesToModels(payload), nil
}

// ListStudentCourses returns courses the signed-in student is eligible for.
func (r *CourseRepository) ListStudentCourses(ctx context.Context) ([]models.CourseInfo, error) {
	var payload []dto.CourseDTO
	if err := r.client.getJSON(ctx, "/api/courses/student", "student courses", &payload); err != nil {
		return nil, err
	}
	return dto.CoursesToModels(payload), nil
}
