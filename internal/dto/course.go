package dto

import "github.com/maplewood/student-portal/internal/models"

// CourseDTO matches the backend CourseDTO returned by the /api/courses
// endpoints. Validation mirrors the contract: required strings non-empty,
// numeric fields non-negative, prerequisite nullable. Fields whose zero
// value is a legal wire value are pointers so a missing key is detectable
// and rejects the payload.
type CourseDTO struct {
	ID             int      `json:"id" validate:"required"`
	Code           string   `json:"code" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Description    *string  `json:"description" validate:"required"`
	Credits        *float64 `json:"credits" validate:"required,gte=0"`
	HoursPerWeek   *int     `json:"hoursPerWeek" validate:"required,gte=0"`
	Specialization string   `json:"specialization" validate:"required"`
	Prerequisite   *string  `json:"prerequisite"`
	CourseType     string   `json:"courseType" validate:"required"`
	GradeLevelMin  *int     `json:"gradeLevelMin" validate:"required,gte=0"`
	GradeLevelMax  *int     `json:"gradeLevelMax" validate:"required,gte=0"`
}

// ToModel converts the wire record into the domain type. Callers validate
// first, so the presence pointers are non-nil by the time this runs.
func (d CourseDTO) ToModel() models.CourseInfo {
	return models.CourseInfo{
		ID:             d.ID,
		Code:           d.Code,
		Name:           d.Name,
		Description:    strValue(d.Description),
		Credits:        floatValue(d.Credits),
		HoursPerWeek:   intValue(d.HoursPerWeek),
		Specialization: d.Specialization,
		Prerequisite:   d.Prerequisite,
		CourseType:     d.CourseType,
		GradeLevelMin:  intValue(d.GradeLevelMin),
		GradeLevelMax:  intValue(d.GradeLevelMax),
	}
}

// CoursesToModels converts a decoded course list.
func CoursesToModels(dtos []CourseDTO) []models.CourseInfo {
	courses := make([]models.CourseInfo, 0, len(dtos))
	for _, d := range dtos {
		courses = append(courses, d.ToModel())
	}
	return courses
}

func strValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
