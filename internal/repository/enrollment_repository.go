package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/maplewood/student-portal/internal/dto"
	"github.com/maplewood/student-portal/internal/models"
	appErrors "github.com/maplewood/student-portal/pkg/errors"
)

// EnrollmentRepository submits enrollment attempts. A 409 is classified into
// an EnrollmentOutcome rather than surfaced as an error; only unexpected
// statuses and transport failures propagate.
type EnrollmentRepository struct {
	client *Client
	logger *zap.Logger
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(client *Client, logger *zap.Logger) *EnrollmentRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentRepository{client: client, logger: logger}
}

// Enroll attempts to enroll the signed-in student into the course. The CSRF
// cookie is read before the POST and echoed as a header when present; when
// absent the request goes out without it and the backend decides.
func (r *EnrollmentRepository) Enroll(ctx context.Context, courseID int) (models.EnrollmentOutcome, error) {
	token, hasToken := r.client.csrfToken()

	req, err := r.client.newRequest(ctx, http.MethodPost, fmt.Sprintf("/api/courses/enroll/c/%d", courseID), nil)
	if err != nil {
		return models.EnrollmentOutcome{}, err
	}
	if hasToken {
		req.Header.Set(csrfHeaderName, token)
	}

	res, err := r.client.http.Do(req)
	if err != nil {
		return models.EnrollmentOutcome{}, fmt.Errorf("request enrollment: %w", err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices:
		return models.EnrollmentSucceeded(), nil
	case res.StatusCode == http.StatusConflict:
		code := r.conflictCode(res.Body, courseID)
		return models.EnrollmentConflicted(code), nil
	default:
		return models.EnrollmentOutcome{}, &appErrors.EnrollError{StatusCode: res.StatusCode}
	}
}

// conflictCode decodes the 409 body best-effort. An unreadable or malformed
// body degrades to the UNKNOWN code instead of failing the classification.
func (r *EnrollmentRepository) conflictCode(body io.Reader, courseID int) models.EnrollmentFailureCode {
	raw, err := io.ReadAll(body)
	if err != nil {
		return models.EnrollmentFailureUnknown
	}

	var payload dto.EnrollmentFailureResponse
	if err := json.Unmarshal(raw, &payload); err != nil || payload.MessageCode == "" {
		r.logger.Warn("unparseable enrollment conflict body", zap.Int("course_id", courseID))
		return models.EnrollmentFailureUnknown
	}
	return models.ParseEnrollmentFailureCode(payload.MessageCode)
}
