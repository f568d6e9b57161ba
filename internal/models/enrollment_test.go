package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnrollmentFailureCodeKnownCodes(t *testing.T) {
	known := []EnrollmentFailureCode{
		EnrollmentFailureInvalidInput,
		EnrollmentFailureGradeLevelMismatch,
		EnrollmentFailureAlreadyPassed,
		EnrollmentFailureAlreadyEnrolled,
		EnrollmentFailurePrerequisiteNotMet,
		EnrollmentFailureMaxCoursesReached,
	}
	for _, code := range known {
		assert.Equal(t, code, ParseEnrollmentFailureCode(string(code)))
	}
}

func TestParseEnrollmentFailureCodeCollapsesUnknown(t *testing.T) {
	assert.Equal(t, EnrollmentFailureUnknown, ParseEnrollmentFailureCode(""))
	assert.Equal(t, EnrollmentFailureUnknown, ParseEnrollmentFailureCode("WAITLIST_FULL"))
	assert.Equal(t, EnrollmentFailureUnknown, ParseEnrollmentFailureCode("course_already_enrolled"))
}

func TestFailureMessageIsTotal(t *testing.T) {
	assert.Equal(t, "You are already enrolled in this course.", EnrollmentFailureAlreadyEnrolled.FailureMessage())
	assert.Equal(t, "You need to complete the prerequisite course first.", EnrollmentFailurePrerequisiteNotMet.FailureMessage())
	assert.Equal(t, "Your grade level is not eligible for this course.", EnrollmentFailureGradeLevelMismatch.FailureMessage())
	assert.Equal(t, "You have already passed this course.", EnrollmentFailureAlreadyPassed.FailureMessage())
	assert.Equal(t, "You have already reached the maximum number of active semester courses.", EnrollmentFailureMaxCoursesReached.FailureMessage())
	assert.Equal(t, "Enrollment request is invalid. Please refresh and try again.", EnrollmentFailureInvalidInput.FailureMessage())

	fallback := "Enrollment could not be completed due to a course rule conflict."
	assert.Equal(t, fallback, EnrollmentFailureUnknown.FailureMessage())
	assert.Equal(t, fallback, EnrollmentFailureCode("NOT_A_CODE").FailureMessage())
}

func TestEnrollmentOutcomeHelpers(t *testing.T) {
	success := EnrollmentSucceeded()
	assert.True(t, success.Enrolled)
	assert.Empty(t, success.Code)

	conflict := EnrollmentConflicted(EnrollmentFailureAlreadyEnrolled)
	assert.False(t, conflict.Enrolled)
	assert.Equal(t, EnrollmentFailureAlreadyEnrolled, conflict.Code)
}
