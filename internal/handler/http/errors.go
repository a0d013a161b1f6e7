package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when
	// the incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrMissingBearerPrefix is returned when the "Authorization" header is
	// present but does not start with the exact "Bearer " scheme prefix
	// (case-sensitive, single space).
	ErrMissingBearerPrefix = errors.New("`Authorization` header is not a Bearer credential")
)

// User-facing rejection texts of the authentication gate. Internal error
// detail never reaches the response body; these four strings are the entire
// vocabulary a rejected caller can observe.
const (
	msgTokenMissing = "Not authorized, token missing"
	msgTokenInvalid = "Invalid token. Please log in again."
	msgTokenExpired = "Token expired. Please log in again."
	msgUserNotFound = "User not found"
)
