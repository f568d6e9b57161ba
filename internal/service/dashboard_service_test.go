package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maplewood/student-portal/internal/models"
)

type fakeDashboardRepo struct {
	history      []models.CourseHistoryEntry
	enrolled     []models.EnrolledCourse
	info         *models.StudentInfo
	err          error
	historyCalls int
}

func (f *fakeDashboardRepo) CourseHistory(context.Context) ([]models.CourseHistoryEntry, error) {
	f.historyCalls++
	return f.history, f.err
}

func (f *fakeDashboardRepo) EnrolledCourses(context.Context) ([]models.EnrolledCourse, error) {
	return f.enrolled, f.err
}

func (f *fakeDashboardRepo) StudentInfo(context.Context) (*models.StudentInfo, error) {
	return f.info, f.err
}

func dashboardFixture() *fakeDashboardRepo {
	return &fakeDashboardRepo{
		history:  []models.CourseHistoryEntry{{CourseName: "Biology", Credits: "4.0", Status: "PASSED"}},
		enrolled: []models.EnrolledCourse{{CourseName: "Chemistry", Credits: "4.5"}},
		info:     &models.StudentInfo{FirstName: "Ava", LastName: "Nguyen", GradeLevel: 11},
	}
}

func TestCourseHistoryCachesResult(t *testing.T) {
	repo := dashboardFixture()
	cacheSvc := NewCacheService(newFakeCacheRepo(), nil, time.Minute, nil, true)
	svc := NewDashboardService(repo, cacheSvc, nil, time.Minute, nil)

	entries, hit, err := svc.CourseHistory(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Len(t, entries, 1)

	entries, hit, err = svc.CourseHistory(context.Background())
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Len(t, entries, 1)
	assert.Equal(t, 1, repo.historyCalls)
}

func TestEnrolledCoursesRoundTripThroughService(t *testing.T) {
	svc := NewDashboardService(dashboardFixture(), nil, nil, time.Minute, nil)

	courses, hit, err := svc.EnrolledCourses(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	require.Len(t, courses, 1)
	assert.Equal(t, "Chemistry", courses[0].CourseName)
}

func TestStudentInfoCachesResult(t *testing.T) {
	repo := dashboardFixture()
	cacheSvc := NewCacheService(newFakeCacheRepo(), nil, time.Minute, nil, true)
	svc := NewDashboardService(repo, cacheSvc, nil, time.Minute, nil)

	info, hit, err := svc.StudentInfo(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "Ava", info.FirstName)

	info, hit, err = svc.StudentInfo(context.Background())
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 11, info.GradeLevel)
}

func TestDashboardReadsPropagateErrors(t *testing.T) {
	repo := dashboardFixture()
	repo.err = errors.New("Failed to fetch course history: 502")
	svc := NewDashboardService(repo, nil, nil, time.Minute, nil)

	_, _, err := svc.CourseHistory(context.Background())
	assert.Error(t, err)
	_, _, err = svc.EnrolledCourses(context.Background())
	assert.Error(t, err)
	_, _, err = svc.StudentInfo(context.Background())
	assert.Error(t, err)
}
