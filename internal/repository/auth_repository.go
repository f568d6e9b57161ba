package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/maplewood/student-portal/internal/dto"
)

// AuthRepository talks to the backend's session endpoints. Login communicates
// only via status code and cookie side effect; there is no body to decode.
type AuthRepository struct {
	client *Client
}

// NewAuthRepository constructs an AuthRepository.
func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client: client}
}

// Login posts form-encoded credentials. A clean non-2xx means the backend
// rejected the credentials (ok=false, nil error); an error return means the
// server could not be reached at all.
func (r *AuthRepository) Login(ctx context.Context, username, password string) (bool, error) {
	form := url.Values{
		"username": {username},
		"password": {password},
	}

	req, err := r.client.newRequest(ctx, http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := r.client.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("request login: %w", err)
	}
	defer res.Body.Close()

	return res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices, nil
}

// Status asks the backend whether the session cookie is still good. Callers
// own the fail-closed downgrade of errors to unauthenticated.
func (r *AuthRepository) Status(ctx context.Context) (bool, error) {
	var payload dto.AuthStatusResponse
	if err := r.client.getJSON(ctx, "/api/auth/me", "authentication status", &payload); err != nil {
		return false, err
	}
	return payload.Authenticated, nil
}
