package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/maplewood/student-portal/internal/models"
)

type courseCatalogRepository interface {
	ListCourses(ctx context.Context) ([]models.CourseInfo, error)
	ListSemesterCourses(ctx context.Context) ([]models.CourseInfo, error)
	ListStudentCourses(ctx context.Context) ([]models.CourseInfo, error)
}

// CourseService serves the three course catalogs through the query cache and
// builds card projections for the portal UI.
type CourseService struct {
	repo    courseCatalogRepository
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
	ttl     time.Duration
}

// NewCourseService constructs a CourseService.
func NewCourseService(repo courseCatalogRepository, cache *CacheService, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *CourseService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, cache: cache, metrics: metrics, logger: logger, ttl: ttl}
}

// Courses returns the full catalog and whether it came from cache.
func (s *CourseService) Courses(ctx context.Context) ([]models.CourseInfo, bool, error) {
	return s.cachedCourses(ctx, CacheKeyCourseList, "courses", s.repo.ListCourses)
}

// SemesterCourses returns the active-semester catalog.
func (s *CourseService) SemesterCourses(ctx context.Context) ([]models.CourseInfo, bool, error) {
	return s.cachedCourses(ctx, CacheKeyCourseSemester, "semester courses", s.repo.ListSemesterCourses)
}

// StudentCourses returns the catalog the signed-in student is eligible for.
func (s *CourseService) StudentCourses(ctx context.Context) ([]models.CourseInfo, bool, error) {
	return s.cachedCourses(ctx, CacheKeyCourseStudent, "student courses", s.repo.ListStudentCourses)
}

// Cards builds display projections for the requested filter. Availability
// flags are derived from membership in the backend-supplied semester and
// student catalogs.
func (s *CourseService) Cards(ctx context.Context, filter models.CourseFilter) ([]models.CourseCardInfo, error) {
	courses, _, err := s.Courses(ctx)
	if err != nil {
		return nil, err
	}
	semester, _, err := s.SemesterCourses(ctx)
	if err != nil {
		return nil, err
	}
	eligible, _, err := s.StudentCourses(ctx)
	if err != nil {
		return nil, err
	}

	semesterIDs := courseIDSet(semester)
	eligibleIDs := courseIDSet(eligible)

	cards := make([]models.CourseCardInfo, 0, len(courses))
	for _, course := range courses {
		_, thisSemester := semesterIDs[course.ID]
		_, forYou := eligibleIDs[course.ID]

		switch filter {
		case models.CourseFilterThisSemester:
			if !thisSemester {
				continue
			}
		case models.CourseFilterAvailableForYou:
			if !forYou {
				continue
			}
		}

		cards = append(cards, models.NewCourseCardInfo(course, forYou, thisSemester))
	}
	return cards, nil
}

func (s *CourseService) cachedCourses(ctx context.Context, key, resource string, fetch func(context.Context) ([]models.CourseInfo, error)) ([]models.CourseInfo, bool, error) {
	if s.cache != nil {
		var cached []models.CourseInfo
		// Cache errors are logged downstream and treated as a miss.
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return cached, true, nil
		}
	}

	start := time.Now()
	courses, err := fetch(ctx)
	if s.metrics != nil {
		s.metrics.ObserveUpstreamRequest(resource, err == nil, time.Since(start))
	}
	if err != nil {
		return nil, false, err
	}

	s.persist(ctx, key, courses)
	return courses, false, nil
}

func (s *CourseService) persist(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn("course cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func courseIDSet(courses []models.CourseInfo) map[int]struct{} {
	ids := make(map[int]struct{}, len(courses))
	for _, course := range courses {
		ids[course.ID] = struct{}{}
	}
	return ids
}
