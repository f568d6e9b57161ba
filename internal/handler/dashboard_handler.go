package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/maplewood/student-portal/internal/middleware"
	"github.com/maplewood/student-portal/internal/models"
	"github.com/maplewood/student-portal/internal/service"
	appErrors "github.com/maplewood/student-portal/pkg/errors"
	"github.com/maplewood/student-portal/pkg/response"
)

type dashboardService interface {
	CourseHistory(ctx context.Context) ([]models.CourseHistoryEntry, bool, error)
	EnrolledCourses(ctx context.Context) ([]models.EnrolledCourse, bool, error)
	StudentInfo(ctx context.Context) (*models.StudentInfo, bool, error)
}

type transcriptExporter interface {
	Enabled() bool
	Transcript(ctx context.Context, format string) (*service.TranscriptExport, error)
}

// DashboardHandler serves the student dashboard views and transcript export.
type DashboardHandler struct {
	service  dashboardService
	exporter transcriptExporter
	logger   *zap.Logger
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(svc dashboardService, exporter transcriptExporter, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{service: svc, exporter: exporter, logger: logger}
}

// CourseHistory godoc
// @Summary Course history across all semesters
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/dashboard/student/course-history [get]
func (h *DashboardHandler) CourseHistory(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}

	start := time.Now()
	entries, cacheHit, err := h.service.CourseHistory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, entries, h.meta(c, start))
}

// EnrolledCourses godoc
// @Summary Active-semester enrollments
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/dashboard/student/enrolled-courses [get]
func (h *DashboardHandler) EnrolledCourses(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}

	start := time.Now()
	courses, cacheHit, err := h.service.EnrolledCourses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.SetCacheHit(c, cacheHit)
	meta := h.meta(c, start)
	if total, err := models.SumEnrolledCredits(courses); err == nil {
		meta["total_credits"] = total
	} else {
		h.logger.Warn("enrolled credits not summable", zap.Error(err))
	}
	response.JSON(c, http.StatusOK, courses, meta)
}

// StudentInfo godoc
// @Summary Dashboard header metrics for the signed-in student
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/dashboard/student/info [get]
func (h *DashboardHandler) StudentInfo(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}

	start := time.Now()
	info, cacheHit, err := h.service.StudentInfo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, info, h.meta(c, start))
}

// Transcript godoc
// @Summary Download the course history as a transcript
// @Tags Dashboard
// @Produce text/csv
// @Produce application/pdf
// @Param format query string true "csv | pdf"
// @Success 200 {file} file
// @Router /api/dashboard/student/transcript [get]
func (h *DashboardHandler) Transcript(c *gin.Context) {
	if h.exporter == nil || !h.exporter.Enabled() {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "transcript exports are disabled"))
		return
	}

	doc, err := h.exporter.Transcript(c.Request.Context(), c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

func (h *DashboardHandler) meta(c *gin.Context, start time.Time) map[string]interface{} {
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	return meta
}
