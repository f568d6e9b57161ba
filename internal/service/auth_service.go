package service

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/maplewood/student-portal/internal/dto"
	"github.com/maplewood/student-portal/internal/models"
	appErrors "github.com/maplewood/student-portal/pkg/errors"
)

type authRepository interface {
	Login(ctx context.Context, username, password string) (bool, error)
	Status(ctx context.Context) (bool, error)
}

// AuthState holds the session status shared with the rest of the portal. It
// starts unknown and is written only by AuthService's status check, so the
// unknown -> authenticated/unauthenticated progression cannot be skipped.
type AuthState struct {
	mu     sync.RWMutex
	status models.AuthStatus
}

// NewAuthState constructs state in the unknown status.
func NewAuthState() *AuthState {
	return &AuthState{status: models.AuthStatusUnknown}
}

// Status returns the last derived session status.
func (s *AuthState) Status() models.AuthStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *AuthState) set(status models.AuthStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// AuthService owns login and the session status check.
type AuthService struct {
	repo      authRepository
	state     *AuthState
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(repo authRepository, state *AuthState, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if state == nil {
		state = NewAuthState()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{repo: repo, state: state, validator: validate, logger: logger}
}

// Status returns the shared session status without contacting the backend.
func (s *AuthService) Status() models.AuthStatus {
	return s.state.Status()
}

// CheckStatus derives the session status from the backend and stores it
// before returning. Any transport or contract failure downgrades to
// unauthenticated; a completed check never reports unknown and never guesses
// authenticated.
func (s *AuthService) CheckStatus(ctx context.Context) models.AuthStatus {
	ok, err := s.repo.Status(ctx)
	if err != nil {
		s.logger.Debug("auth status check failed", zap.Error(err))
		ok = false
	}

	status := models.AuthStatusUnauthenticated
	if ok {
		status = models.AuthStatusAuthenticated
	}
	s.state.set(status)
	return status
}

// Login submits credentials. Rejected credentials are an ok=false result,
// not an error; an error means the backend was unreachable. After a
// successful login the shared status is re-derived from the new session.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "username and password are required")
	}

	ok, err := s.repo.Login(ctx, req.Username, req.Password)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "could not reach authentication server")
	}

	if ok {
		s.CheckStatus(ctx)
	}
	return ok, nil
}
