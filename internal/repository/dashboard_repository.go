package repository

import (
	"context"

	"github.com/maplewood/student-portal/internal/dto"
	"github.com/maplewood/student-portal/internal/models"
)

// DashboardRepository reads the student dashboard resources.
type DashboardRepository struct {
	client *Client
}

// NewDashboardRepository constructs a DashboardRepository.
func NewDashboardRepository(client *Client) *DashboardRepository {
	return &DashboardRepository{client: client}
}

// CourseHistory returns the student's completed and attempted courses.
func (r *DashboardRepository) CourseHistory(ctx context.Context) ([]models.CourseHistoryEntry, error) {
	var payload dto.CourseHistoryResponse
	if err := r.client.getJSON(ctx, "/api/dashboard/student/course-history", "course history", &payload); err != nil {
		return nil, err
	}
	return payload.ToModels(), nil
}

// EnrolledCourses returns the student's active-semester enrollments.
func (r *DashboardRepository) EnrolledCourses(ctx context.Context) ([]models.EnrolledCourse, error) {
	var payload dto.EnrolledCoursesResponse
	if err := r.client.getJSON(ctx, "/api/dashboard/student/enrolled-courses", "enrolled courses", &payload); err != nil {
		return nil, err
	}
	return payload.ToModels(), nil
}

// StudentInfo returns the dashboard header metrics.
func (r *DashboardRepository) StudentInfo(ctx context.Context) (*models.StudentInfo, error) {
	var payload dto.StudentInfoResponse
	if err := r.client.getJSON(ctx, "/api/dashboard/student/info", "student info", &payload); err != nil {
		return nil, err
	}
	info := payload.ToModel()
	return &info, nil
}
