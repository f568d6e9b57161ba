package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/maplewood/student-portal/internal/models"
)

type enrollmentSubmitter interface {
	Enroll(ctx context.Context, courseID int) (models.EnrollmentOutcome, error)
}

// EnrollmentService runs the enrollment workflow: submit the attempt,
// classify the outcome, and refresh the dependent cached views on success.
type EnrollmentService struct {
	repo    enrollmentSubmitter
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
}

// NewEnrollmentService constructs an EnrollmentService.
func NewEnrollmentService(repo enrollmentSubmitter, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, cache: cache, metrics: metrics, logger: logger}
}

// EnrollmentInvalidationKeys lists the cached views whose membership or
// flags can change when an enrollment lands: the three course catalogs and
// the enrolled-courses list. Course history and student info are untouched.
func EnrollmentInvalidationKeys() []string {
	return []string{
		CacheKeyCourseList,
		CacheKeyCourseSemester,
		CacheKeyCourseStudent,
		CacheKeyEnrolledCourses,
	}
}

// Enroll submits an enrollment attempt. A conflict is returned as a normal
// outcome; only transport failures and unexpected statuses return an error.
// Nothing is invalidated unless the enrollment succeeded.
func (s *EnrollmentService) Enroll(ctx context.Context, courseID int) (models.EnrollmentOutcome, error) {
	start := time.Now()
	outcome, err := s.repo.Enroll(ctx, courseID)
	if s.metrics != nil {
		s.metrics.ObserveUpstreamRequest("enrollment", err == nil, time.Since(start))
	}
	if err != nil {
		return models.EnrollmentOutcome{}, err
	}

	if outcome.Enrolled {
		// The enrollment already landed upstream; a failed invalidation
		// leaves views stale until TTL expiry but must not undo the outcome.
		if err := s.cache.Invalidate(ctx, EnrollmentInvalidationKeys()...); err != nil {
			s.logger.Warn("post-enrollment invalidation failed",
				zap.Int("course_id", courseID), zap.Error(err))
		}
		s.logger.Info("enrolled in course", zap.Int("course_id", courseID))
	} else {
		s.logger.Info("enrollment conflicted",
			zap.Int("course_id", courseID), zap.String("code", string(outcome.Code)))
	}

	return outcome, nil
}
