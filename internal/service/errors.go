package service

import "errors"

// Sentinel errors surfaced by the service layer. The authentication trio
// (ErrTokenExpired, ErrTokenInvalid, ErrUserNotFound) is the verification
// result sum consumed by the auth middleware: callers branch with errors.Is
// instead of inspecting JWT library error types.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTokenExpired indicates a structurally valid, correctly signed
	// token whose expiry has lapsed.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid covers both malformed tokens and signature
	// mismatches. The two are deliberately not distinguishable from the
	// outside; the underlying cause is logged for operators only.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrUserNotFound indicates a valid token whose subject no longer
	// matches any account (e.g. the account was deleted).
	ErrUserNotFound = errors.New("user not found")

	// ErrCarUnavailable indicates the car cannot be booked for the
	// requested period (marked unavailable or already reserved).
	ErrCarUnavailable = errors.New("car is not available for the requested dates")

	// ErrNotResourceOwner indicates an authenticated user addressing a
	// booking or payment that belongs to someone else.
	ErrNotResourceOwner = errors.New("resource belongs to a different user")
)
