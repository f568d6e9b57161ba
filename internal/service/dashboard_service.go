package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/maplewood/student-portal/internal/models"
)

type studentDashboardRepository interface {
	CourseHistory(ctx context.Context) ([]models.CourseHistoryEntry, error)
	EnrolledCourses(ctx context.Context) ([]models.EnrolledCourse, error)
	StudentInfo(ctx context.Context) (*models.StudentInfo, error)
}

// DashboardService serves the student dashboard resources through the query
// cache. The three reads are independent and may run concurrently.
type DashboardService struct {
	repo    studentDashboardRepository
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
	ttl     time.Duration
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(repo studentDashboardRepository, cache *CacheService, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *DashboardService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{repo: repo, cache: cache, metrics: metrics, logger: logger, ttl: ttl}
}

// CourseHistory returns the student's course history and whether it came
// from cache.
func (s *DashboardService) CourseHistory(ctx context.Context) ([]models.CourseHistoryEntry, bool, error) {
	if s.cache != nil {
		var cached []models.CourseHistoryEntry
		// Cache errors are logged downstream and treated as a miss.
		if hit, _ := s.cache.Get(ctx, CacheKeyCourseHistory, &cached); hit {
			return cached, true, nil
		}
	}

	start := time.Now()
	entries, err := s.repo.CourseHistory(ctx)
	if s.metrics != nil {
		s.metrics.ObserveUpstreamRequest("course history", err == nil, time.Since(start))
	}
	if err != nil {
		return nil, false, err
	}

	s.persist(ctx, CacheKeyCourseHistory, entries)
	return entries, false, nil
}

// EnrolledCourses returns the student's active-semester enrollments.
func (s *DashboardService) EnrolledCourses(ctx context.Context) ([]models.EnrolledCourse, bool, error) {
	if s.cache != nil {
		var cached []models.EnrolledCourse
		if hit, _ := s.cache.Get(ctx, CacheKeyEnrolledCourses, &cached); hit {
			return cached, true, nil
		}
	}

	start := time.Now()
	courses, err := s.repo.EnrolledCourses(ctx)
	if s.metrics != nil {
		s.metrics.ObserveUpstreamRequest("enrolled courses", err == nil, time.Since(start))
	}
	if err != nil {
		return nil, false, err
	}

	s.persist(ctx, CacheKeyEnrolledCourses, courses)
	return courses, false, nil
}

// StudentInfo returns the dashboard header metrics.
func (s *DashboardService) StudentInfo(ctx context.Context) (*models.StudentInfo, bool, error) {
	if s.cache != nil {
		var cached models.StudentInfo
		if hit, _ := s.cache.Get(ctx, CacheKeyStudentInfo, &cached); hit {
			return &cached, true, nil
		}
	}

	start := time.Now()
	info, err := s.repo.StudentInfo(ctx)
	if s.metrics != nil {
		s.metrics.ObserveUpstreamRequest("student info", err == nil, time.Since(start))
	}
	if err != nil {
		return nil, false, err
	}

	s.persist(ctx, CacheKeyStudentInfo, info)
	return info, false, nil
}

func (s *DashboardService) persist(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}
