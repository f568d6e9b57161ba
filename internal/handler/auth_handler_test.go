package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maplewood/student-portal/internal/dto"
	"github.com/maplewood/student-portal/internal/models"
	appErrors "github.com/maplewood/student-portal/pkg/errors"
)

type fakeAuthSrv struct {
	loginOK  bool
	loginErr error
	status   models.AuthStatus
	lastReq  dto.LoginRequest
}

func (f *fakeAuthSrv) Login(_ context.Context, req dto.LoginRequest) (bool, error) {
	f.lastReq = req
	return f.loginOK, f.loginErr
}

func (f *fakeAuthSrv) CheckStatus(context.Context) models.AuthStatus {
	return f.status
}

func (f *fakeAuthSrv) Status() models.AuthStatus {
	return f.status
}

func loginRequest(t *testing.T, srv *fakeAuthSrv, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Login(c)
	return rec
}

func TestAuthHandlerLoginSuccess(t *testing.T) {
	srv := &fakeAuthSrv{loginOK: true}
	rec := loginRequest(t, srv, `{"username": "student1", "password": "s3cret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "student1", srv.lastReq.Username)

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope.Data["authenticated"])
}

func TestAuthHandlerLoginRejected(t *testing.T) {
	rec := loginRequest(t, &fakeAuthSrv{loginOK: false}, `{"username": "student1", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandlerLoginBadPayload(t *testing.T) {
	rec := loginRequest(t, &fakeAuthSrv{}, `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandlerLoginUpstreamUnreachable(t *testing.T) {
	srv := &fakeAuthSrv{loginErr: appErrors.Clone(appErrors.ErrUpstream, "could not reach authentication server")}
	rec := loginRequest(t, srv, `{"username": "student1", "password": "s3cret"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAuthHandlerMe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&fakeAuthSrv{status: models.AuthStatusAuthenticated})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)

	handler.Me(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope.Data["authenticated"])
	assert.Equal(t, "authenticated", envelope.Data["status"])
}

func TestAuthHandlerMeUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&fakeAuthSrv{status: models.AuthStatusUnauthenticated})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)

	handler.Me(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, false, envelope.Data["authenticated"])
}
