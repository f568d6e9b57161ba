package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maplewood/student-portal/internal/middleware"
	"github.com/maplewood/student-portal/internal/models"
	appErrors "github.com/maplewood/student-portal/pkg/errors"
	"github.com/maplewood/student-portal/pkg/response"
)

type courseService interface {
	Courses(ctx context.Context) ([]models.CourseInfo, bool, error)
	SemesterCourses(ctx context.Context) ([]models.CourseInfo, bool, error)
	StudentCourses(ctx context.Context) ([]models.CourseInfo, bool, error)
	Cards(ctx context.Context, filter models.CourseFilter) ([]models.CourseCardInfo, error)
}

// CourseHandler serves the course catalogs to the portal UI.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler constructs the handler.
func NewCourseHandler(service courseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// List godoc
// @Summary Full course catalog
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/courses/ [get]
func (h *CourseHandler) List(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	h.respondCatalog(c, h.service.Courses)
}

// Semester godoc
// @Summary Courses offered this semester
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/courses/semester [get]
func (h *CourseHandler) Semester(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	h.respondCatalog(c, h.service.SemesterCourses)
}

// Student godoc
// @Summary Courses the signed-in student is eligible for
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/courses/student [get]
func (h *CourseHandler) Student(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	h.respondCatalog(c, h.service.StudentCourses)
}

// Cards godoc
// @Summary Course cards with availability flags
// @Tags Courses
// @Produce json
// @Param filter query string false "all | this-semester | available-for-you"
// @Success 200 {object} response.Envelope
// @Router /api/courses/cards [get]
func (h *CourseHandler) Cards(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}

	raw := strings.TrimSpace(c.Query("filter"))
	filter, ok := models.ParseCourseFilter(raw)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "filter must be all, this-semester or available-for-you"))
		return
	}

	start := time.Now()
	cards, err := h.service.Cards(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	meta["filter"] = string(filter)
	response.JSON(c, http.StatusOK, cards, meta)
}

func (h *CourseHandler) respondCatalog(c *gin.Context, load func(context.Context) ([]models.CourseInfo, bool, error)) {
	start := time.Now()
	courses, cacheHit, err := load(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, courses, meta)
}
