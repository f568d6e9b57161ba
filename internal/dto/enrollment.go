package dto

// EnrollmentFailureResponse matches the 409 body of the enroll endpoint.
// MessageCode is kept raw here; mapping onto the closed code set happens in
// the domain layer so unknown backend codes degrade instead of failing.
type EnrollmentFailureResponse struct {
	MessageCode string `json:"messageCode" validate:"required"`
	CourseID    int    `json:"courseId"`
}
