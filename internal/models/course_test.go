package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCourseFilter(t *testing.T) {
	filter, ok := ParseCourseFilter("")
	assert.True(t, ok)
	assert.Equal(t, CourseFilterAll, filter)

	filter, ok = ParseCourseFilter("this-semester")
	assert.True(t, ok)
	assert.Equal(t, CourseFilterThisSemester, filter)

	filter, ok = ParseCourseFilter("available-for-you")
	assert.True(t, ok)
	assert.Equal(t, CourseFilterAvailableForYou, filter)

	_, ok = ParseCourseFilter("next-year")
	assert.False(t, ok)
}

func TestNewCourseCardInfo(t *testing.T) {
	prereq := "MATH101"
	course := CourseInfo{
		ID:             7,
		Code:           "MATH201",
		Name:           "Calculus",
		Description:    "Limits and derivatives",
		Credits:        4.5,
		Specialization: "Science",
		Prerequisite:   &prereq,
	}

	card := NewCourseCardInfo(course, true, false)
	assert.Equal(t, 7, card.ID)
	assert.Equal(t, "MATH201", card.Code)
	assert.Equal(t, "Calculus", card.Name)
	assert.Equal(t, 4.5, card.Credits)
	assert.Equal(t, "Science", card.Specialization)
	assert.True(t, card.AvailableForYou)
	assert.False(t, card.AvailableThisSemester)
}
