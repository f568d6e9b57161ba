package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maplewood/student-portal/pkg/config"
	appErrors "github.com/maplewood/student-portal/pkg/errors"
)

const (
	csrfCookieName = "XSRF-TOKEN"
	csrfHeaderName = "X-XSRF-TOKEN"
)

// Client is the credentialed HTTP core shared by the upstream repositories.
// The cookie jar holds the backend session and CSRF cookies; every decoded
// payload passes strict schema validation before it reaches a caller.
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
	logger   *zap.Logger
}

// NewClient builds a Client against the configured backend base URL.
func NewClient(cfg config.UpstreamConfig, logger *zap.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("init cookie jar: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: cfg.Timeout, Jar: jar},
		validate: validator.New(),
		logger:   logger,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// getJSON issues a credentialed GET and decodes the body into dest, failing
// closed on non-success statuses and contract violations.
func (c *Client) getJSON(ctx context.Context, path, resource string, dest interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", resource, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("upstream request rejected",
			zap.String("resource", resource),
			zap.Int("status", res.StatusCode))
		return appErrors.NewUpstreamError(resource, res.StatusCode)
	}

	return c.decode(res.Body, resource, dest)
}

// decode unmarshals strictly (unknown fields rejected) and validates the
// result. A payload that fails either step is discarded entirely.
func (c *Client) decode(r io.Reader, resource string, dest interface{}) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return appErrors.NewSchemaError(resource, "", err.Error())
	}
	return c.validateDecoded(resource, dest)
}

func (c *Client) validateDecoded(resource string, dest interface{}) error {
	value := reflect.ValueOf(dest)
	for value.Kind() == reflect.Ptr {
		value = value.Elem()
	}

	if value.Kind() == reflect.Slice {
		for i := 0; i < value.Len(); i++ {
			if err := c.validate.Struct(value.Index(i).Interface()); err != nil {
				return schemaError(resource, fmt.Sprintf("[%d]", i), err)
			}
		}
		return nil
	}

	if err := c.validate.Struct(value.Interface()); err != nil {
		return schemaError(resource, "", err)
	}
	return nil
}

func schemaError(resource, prefix string, err error) error {
	var violations validator.ValidationErrors
	if errors.As(err, &violations) && len(violations) > 0 {
		first := violations[0]
		return appErrors.NewSchemaError(resource, prefix+"."+first.Field(),
			fmt.Sprintf("failed %q constraint", first.Tag()))
	}
	return appErrors.NewSchemaError(resource, prefix, err.Error())
}

// csrfToken reads the anti-forgery cookie from the jar. The read always
// precedes the mutating request that echoes it.
func (c *Client) csrfToken() (string, bool) {
	if c.http.Jar == nil {
		return "", false
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", false
	}
	return cookieValue(c.http.Jar.Cookies(base), csrfCookieName)
}

// cookieValue finds the named cookie in a cookie list. Pure so it can be
// exercised with injected cookies.
func cookieValue(cookies []*http.Cookie, name string) (string, bool) {
	for _, cookie := range cookies {
		if cookie.Name == name && cookie.Value != "" {
			return cookie.Value, true
		}
	}
	return "", false
}
