package models

import (
	"fmt"
	"strconv"
)

// CourseHistoryEntry is one completed-or-attempted course line on the
// student dashboard. Credits keeps the backend's decimal-string display form
// and is parsed only for aggregate totals.
type CourseHistoryEntry struct {
	CourseName string `json:"courseName"`
	Credits    string `json:"credits"`
	Status     string `json:"status"`
}

// EnrolledCourse is one active-semester enrollment line.
type EnrolledCourse struct {
	CourseName string `json:"courseName"`
	Credits    string `json:"credits"`
}

// StudentInfo carries the dashboard header metrics for the signed-in student.
type StudentInfo struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	GradeLevel    int     `json:"gradeLevel"`
	Status        string  `json:"status"`
	EarnedCredits float64 `json:"earnedCredits"`
}

// SumEnrolledCredits totals the credit strings of enrolled courses.
func SumEnrolledCredits(courses []EnrolledCourse) (float64, error) {
	var total float64
	for _, course := range courses {
		value, err := strconv.ParseFloat(course.Credits, 64)
		if err != nil {
			return 0, fmt.Errorf("parse credits %q for %s: %w", course.Credits, course.CourseName, err)
		}
		total += value
	}
	return total, nil
}
