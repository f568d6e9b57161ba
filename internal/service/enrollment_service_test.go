package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maplewood/student-portal/internal/models"
	appErrors "github.com/maplewood/student-portal/pkg/errors"
)

type fakeCacheRepo struct {
	store      map[string][]byte
	getErr     error
	setErr     error
	deleteErr  error
	deletedKey [][]string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{store: map[string][]byte{}}
}

func (f *fakeCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	if f.getErr != nil {
		return f.getErr
	}
	raw, ok := f.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = raw
	return nil
}

func (f *fakeCacheRepo) Delete(_ context.Context, keys ...string) error {
	f.deletedKey = append(f.deletedKey, keys)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for _, key := range keys {
		delete(f.store, key)
	}
	return nil
}

type fakeSubmitter struct {
	outcome models.EnrollmentOutcome
	err     error
	calls   int
}

func (f *fakeSubmitter) Enroll(context.Context, int) (models.EnrollmentOutcome, error) {
	f.calls++
	return f.outcome, f.err
}

func TestEnrollmentInvalidationKeys(t *testing.T) {
	assert.Equal(t, []string{
		CacheKeyCourseList,
		CacheKeyCourseSemester,
		CacheKeyCourseStudent,
		CacheKeyEnrolledCourses,
	}, EnrollmentInvalidationKeys())
}

func TestEnrollSuccessInvalidatesExactKeys(t *testing.T) {
	repo := newFakeCacheRepo()
	repo.store[CacheKeyCourseHistory] = []byte(`[]`)
	repo.store[CacheKeyStudentInfo] = []byte(`{}`)
	cacheSvc := NewCacheService(repo, nil, time.Minute, nil, true)

	svc := NewEnrollmentService(&fakeSubmitter{outcome: models.EnrollmentSucceeded()}, cacheSvc, nil, nil)
	outcome, err := svc.Enroll(context.Background(), 9)

	require.NoError(t, err)
	assert.True(t, outcome.Enrolled)
	require.Len(t, repo.deletedKey, 1)
	assert.Equal(t, EnrollmentInvalidationKeys(), repo.deletedKey[0])

	// Course history and student info survive the invalidation.
	assert.Contains(t, repo.store, CacheKeyCourseHistory)
	assert.Contains(t, repo.store, CacheKeyStudentInfo)
}

func TestEnrollConflictInvalidatesNothing(t *testing.T) {
	repo := newFakeCacheRepo()
	cacheSvc := NewCacheService(repo, nil, time.Minute, nil, true)

	svc := NewEnrollmentService(&fakeSubmitter{
		outcome: models.EnrollmentConflicted(models.EnrollmentFailureAlreadyEnrolled),
	}, cacheSvc, nil, nil)
	outcome, err := svc.Enroll(context.Background(), 9)

	require.NoError(t, err)
	assert.False(t, outcome.Enrolled)
	assert.Equal(t, models.EnrollmentFailureAlreadyEnrolled, outcome.Code)
	assert.Empty(t, repo.deletedKey)
}

func TestEnrollErrorInvalidatesNothing(t *testing.T) {
	repo := newFakeCacheRepo()
	cacheSvc := NewCacheService(repo, nil, time.Minute, nil, true)

	svc := NewEnrollmentService(&fakeSubmitter{err: errors.New("boom")}, cacheSvc, nil, nil)
	_, err := svc.Enroll(context.Background(), 9)

	assert.Error(t, err)
	assert.Empty(t, repo.deletedKey)
}

func TestEnrollSuccessSurvivesInvalidationFailure(t *testing.T) {
	repo := newFakeCacheRepo()
	repo.deleteErr = errors.New("redis down")
	cacheSvc := NewCacheService(repo, nil, time.Minute, nil, true)

	svc := NewEnrollmentService(&fakeSubmitter{outcome: models.EnrollmentSucceeded()}, cacheSvc, nil, nil)
	outcome, err := svc.Enroll(context.Background(), 9)

	require.NoError(t, err)
	assert.True(t, outcome.Enrolled)
}

func TestEnrollWorksWithoutCache(t *testing.T) {
	svc := NewEnrollmentService(&fakeSubmitter{outcome: models.EnrollmentSucceeded()}, nil, nil, nil)
	outcome, err := svc.Enroll(context.Background(), 9)

	require.NoError(t, err)
	assert.True(t, outcome.Enrolled)
}
