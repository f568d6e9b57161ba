package models

// AuthStatus is the session state as last derived from the backend. It
// starts unknown and settles to authenticated or unauthenticated once a
// status check completes; a completed check never leaves it unknown.
type AuthStatus string

const (
	AuthStatusUnknown         AuthStatus = "unknown"
	AuthStatusAuthenticated   AuthStatus = "authenticated"
	AuthStatusUnauthenticated AuthStatus = "unauthenticated"
)
