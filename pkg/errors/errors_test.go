package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamErrorMessage(t *testing.T) {
	err := NewUpstreamError("courses", http.StatusInternalServerError)
	assert.Equal(t, "Failed to fetch courses: 500", err.Error())

	err = NewUpstreamError("enrolled courses", http.StatusUnauthorized)
	assert.Equal(t, "Failed to fetch enrolled courses: 401", err.Error())
}

func TestEnrollErrorMessage(t *testing.T) {
	err := &EnrollError{StatusCode: http.StatusForbidden}
	assert.Equal(t, "Failed to enroll in course: 403", err.Error())
}

func TestSchemaErrorMessage(t *testing.T) {
	err := NewSchemaError("courses", "[2].Code", `failed "required" constraint`)
	assert.Equal(t, `invalid courses payload at [2].Code: failed "required" constraint`, err.Error())

	err = NewSchemaError("student info", "", "unexpected field")
	assert.Equal(t, "invalid student info payload: unexpected field", err.Error())
}

func TestFromErrorMapsDomainErrors(t *testing.T) {
	appErr := FromError(NewUpstreamError("courses", 500))
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
	assert.Equal(t, "UPSTREAM_ERROR", appErr.Code)
	assert.Equal(t, "Failed to fetch courses: 500", appErr.Message)

	appErr = FromError(&EnrollError{StatusCode: 502})
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
	assert.Equal(t, "Failed to enroll in course: 502", appErr.Message)

	appErr = FromError(NewSchemaError("courses", "", "garbage"))
	assert.Equal(t, "SCHEMA_ERROR", appErr.Code)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
}

func TestFromErrorWrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("request courses: %w", NewUpstreamError("courses", 500))
	appErr := FromError(wrapped)
	assert.Equal(t, "UPSTREAM_ERROR", appErr.Code)
}

func TestFromErrorFallsBackToInternal(t *testing.T) {
	appErr := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestFromErrorPassesThroughTypedErrors(t *testing.T) {
	appErr := FromError(ErrUnauthorized)
	assert.Equal(t, ErrUnauthorized, appErr)
	assert.Nil(t, FromError(nil))
}

func TestCloneOverridesMessageOnly(t *testing.T) {
	clone := Clone(ErrValidation, "filter must be all, this-semester or available-for-you")
	assert.Equal(t, ErrValidation.Code, clone.Code)
	assert.Equal(t, ErrValidation.Status, clone.Status)
	assert.Equal(t, "filter must be all, this-semester or available-for-you", clone.Message)
	assert.Equal(t, "validation failed", ErrValidation.Message)
}
