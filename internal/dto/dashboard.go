package dto

import "github.com/maplewood/student-portal/internal/models"

// CourseHistoryLineDTO matches the backend CourseHistoryDTO inside the
// course-history response. Credits stays a decimal string on the wire.
type CourseHistoryLineDTO struct {
	CourseName string `json:"courseName" validate:"required"`
	Credits    string `json:"credits" validate:"required"`
	Status     string `json:"status" validate:"required"`
}

// CourseHistoryResponse wraps the course history list. The wrapper key is
// part of the contract: the pointer makes an absent key distinguishable from
// an empty list, so `{}` rejects instead of decoding to no history.
type CourseHistoryResponse struct {
	CourseHistory *[]CourseHistoryLineDTO `json:"courseHistory" validate:"required,dive"`
}

// ToModels converts the wrapped list into domain entries.
func (r CourseHistoryResponse) ToModels() []models.CourseHistoryEntry {
	if r.CourseHistory == nil {
		return nil
	}
	entries := make([]models.CourseHistoryEntry, 0, len(*r.CourseHistory))
	for _, line := range *r.CourseHistory {
		entries = append(entries, models.CourseHistoryEntry{
			CourseName: line.CourseName,
			Credits:    line.Credits,
			Status:     line.Status,
		})
	}
	return entries
}

// EnrolledCourseLineDTO matches the backend EnrolledCourseDTO.
type EnrolledCourseLineDTO struct {
	CourseName string `json:"courseName" validate:"required"`
	Credits    string `json:"credits" validate:"required"`
}

// EnrolledCoursesResponse wraps the enrolled courses list. Same presence
// rule as CourseHistoryResponse.
type EnrolledCoursesResponse struct {
	EnrolledCourses *[]EnrolledCourseLineDTO `json:"enrolledCourses" validate:"required,dive"`
}

// ToModels converts the wrapped list into domain entries.
func (r EnrolledCoursesResponse) ToModels() []models.EnrolledCourse {
	if r.EnrolledCourses == nil {
		return nil
	}
	courses := make([]models.EnrolledCourse, 0, len(*r.EnrolledCourses))
	for _, line := range *r.EnrolledCourses {
		courses = append(courses, models.EnrolledCourse{
			CourseName: line.CourseName,
			Credits:    line.Credits,
		})
	}
	return courses
}

// StudentInfoResponse matches the backend student information payload.
// GradeLevel and EarnedCredits are pointers because 0 is a legal value and
// the keys themselves are required.
type StudentInfoResponse struct {
	FirstName     string   `json:"firstName" validate:"required"`
	LastName      string   `json:"lastName" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	GradeLevel    *int     `json:"gradeLevel" validate:"required,gte=0"`
	Status        string   `json:"status" validate:"required"`
	EarnedCredits *float64 `json:"earnedCredits" validate:"required,gte=0"`
}

// ToModel converts the wire record into the domain type.
func (r StudentInfoResponse) ToModel() models.StudentInfo {
	return models.StudentInfo{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		GradeLevel:    intValue(r.GradeLevel),
		Status:        r.Status,
		EarnedCredits: floatValue(r.EarnedCredits),
	}
}
