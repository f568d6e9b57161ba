package models

// EnrollmentFailureCode classifies a business-rule rejection of an
// enrollment attempt. The set mirrors the backend's enumeration; codes the
// backend may add later collapse to EnrollmentFailureUnknown.
type EnrollmentFailureCode string

const (
	EnrollmentFailureInvalidInput       EnrollmentFailureCode = "INVALID_INPUT"
	EnrollmentFailureGradeLevelMismatch EnrollmentFailureCode = "GRADE_LEVEL_MISMATCH"
	EnrollmentFailureAlreadyPassed      EnrollmentFailureCode = "COURSE_ALREADY_PASSED"
	EnrollmentFailureAlreadyEnrolled    EnrollmentFailureCode = "COURSE_ALREADY_ENROLLED"
	EnrollmentFailurePrerequisiteNotMet EnrollmentFailureCode = "PREREQUISITE_NOT_MET"
	EnrollmentFailureMaxCoursesReached  EnrollmentFailureCode = "MAX_COURSES_REACHED"
	EnrollmentFailureUnknown            EnrollmentFailureCode = "UNKNOWN"
)

// ParseEnrollmentFailureCode maps a raw backend code onto the closed set.
func ParseEnrollmentFailureCode(raw string) EnrollmentFailureCode {
	switch EnrollmentFailureCode(raw) {
	case EnrollmentFailureInvalidInput,
		EnrollmentFailureGradeLevelMismatch,
		EnrollmentFailureAlreadyPassed,
		EnrollmentFailureAlreadyEnrolled,
		EnrollmentFailurePrerequisiteNotMet,
		EnrollmentFailureMaxCoursesReached:
		return EnrollmentFailureCode(raw)
	default:
		return EnrollmentFailureUnknown
	}
}

// FailureMessage renders the user-facing sentence for a failure code. It is
// total: any value outside the known set yields the UNKNOWN message.
func (c EnrollmentFailureCode) FailureMessage() string {
	switch c {
	case EnrollmentFailureInvalidInput:
		return "Enrollment request is invalid. Please refresh and try again."
	case EnrollmentFailureGradeLevelMismatch:
		return "Your grade level is not eligible for this course."
	case EnrollmentFailureAlreadyPassed:
		return "You have already passed this course."
	case EnrollmentFailureAlreadyEnrolled:
		return "You are already enrolled in this course."
	case EnrollmentFailurePrerequisiteNotMet:
		return "You need to complete the prerequisite course first."
	case EnrollmentFailureMaxCoursesReached:
		return "You have already reached the maximum number of active semester courses."
	default:
		return "Enrollment could not be completed due to a course rule conflict."
	}
}

// EnrollmentOutcome is the result of an enrollment attempt. A conflict is an
// expected business outcome the caller branches on, not an error.
type EnrollmentOutcome struct {
	Enrolled bool
	Code     EnrollmentFailureCode
}

// EnrollmentSucceeded builds the success outcome.
func EnrollmentSucceeded() EnrollmentOutcome {
	return EnrollmentOutcome{Enrolled: true}
}

// EnrollmentConflicted builds a conflict outcome for the given code.
func EnrollmentConflicted(code EnrollmentFailureCode) EnrollmentOutcome {
	return EnrollmentOutcome{Enrolled: false, Code: code}
}
