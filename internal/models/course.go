package models

// CourseInfo is a catalog course as served by the Maplewood backend. The
// identity key is ID; all fields are backend-owned and never mutated locally.
type CourseInfo struct {
	ID             int     `json:"id"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Credits        float64 `json:"credits"`
	HoursPerWeek   int     `json:"hoursPerWeek"`
	Specialization string  `json:"specialization"`
	Prerequisite   *string `json:"prerequisite"`
	CourseType     string  `json:"courseType"`
	GradeLevelMin  int     `json:"gradeLevelMin"`
	GradeLevelMax  int     `json:"gradeLevelMax"`
}

// CourseCardInfo is the display projection of a catalog course. The two
// availability flags come from membership in the backend-supplied semester
// and student catalogs, never from local rule evaluation.
type CourseCardInfo struct {
	ID                    int     `json:"id"`
	Code                  string  `json:"code"`
	Name                  string  `json:"name"`
	Credits               float64 `json:"credits"`
	Specialization        string  `json:"specialization"`
	AvailableForYou       bool    `json:"availableForYou"`
	AvailableThisSemester bool    `json:"availableThisSemester"`
}

// NewCourseCardInfo projects a CourseInfo onto its card representation.
func NewCourseCardInfo(course CourseInfo, availableForYou, availableThisSemester bool) CourseCardInfo {
	return CourseCardInfo{
		ID:                    course.ID,
		Code:                  course.Code,
		Name:                  course.Name,
		Credits:               course.Credits,
		Specialization:        course.Specialization,
		AvailableForYou:       availableForYou,
		AvailableThisSemester: availableThisSemester,
	}
}

// CourseFilter selects which catalog slice a card listing reflects. Values
// mirror the portal's filter pills.
type CourseFilter string

const (
	CourseFilterAll             CourseFilter = "all"
	CourseFilterThisSemester    CourseFilter = "this-semester"
	CourseFilterAvailableForYou CourseFilter = "available-for-you"
)

// ParseCourseFilter maps a raw filter value onto the closed set, defaulting
// to the full catalog.
func ParseCourseFilter(raw string) (CourseFilter, bool) {
	switch CourseFilter(raw) {
	case CourseFilterAll, "":
		return CourseFilterAll, true
	case CourseFilterThisSemester:
		return CourseFilterThisSemester, true
	case CourseFilterAvailableForYou:
		return CourseFilterAvailableForYou, true
	default:
		return CourseFilterAll, false
	}
}
