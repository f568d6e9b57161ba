package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maplewood/student-portal/internal/models"
	appErrors "github.com/maplewood/student-portal/pkg/errors"
	"github.com/maplewood/student-portal/pkg/response"
)

type enrollmentService interface {
	Enroll(ctx context.Context, courseID int) (models.EnrollmentOutcome, error)
}

// EnrollmentHandler submits enrollment attempts on behalf of the portal UI.
type EnrollmentHandler struct {
	service enrollmentService
}

// NewEnrollmentHandler constructs the handler.
func NewEnrollmentHandler(service enrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

// Enroll godoc
// @Summary Enroll the signed-in student in a course
// @Tags Enrollment
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /api/courses/enroll/c/{courseId} [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}

	courseID, err := strconv.Atoi(c.Param("courseId"))
	if err != nil || courseID <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "courseId must be a positive integer"))
		return
	}

	outcome, err := h.service.Enroll(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !outcome.Enrolled {
		response.JSON(c, http.StatusConflict, gin.H{
			"enrolled":    false,
			"messageCode": outcome.Code,
			"courseId":    courseID,
			"message":     outcome.Code.FailureMessage(),
		})
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"enrolled": true,
		"courseId": courseID,
	})
}
