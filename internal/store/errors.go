package store

import "errors"

// Sentinel errors returned by the repositories. The HTTP layer maps them to
// status codes via its error mapper; the auth service maps ErrNoUserWasFound
// to its own principal-not-found error.
var (
	// ErrNoUserWasFound indicates that no user row matches the identifier.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCarNotFound indicates that no car row matches the identifier.
	ErrCarNotFound = errors.New("car not found")

	// ErrBookingNotFound indicates that no booking row matches the identifier.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPaymentNotFound indicates that no payment row matches the identifier.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrDuplicateRecord indicates a unique-constraint violation
	// (e.g. inserting a car with an already-used identifier).
	ErrDuplicateRecord = errors.New("record already exists")

	// ErrBuildingSQLQuery indicates a failure assembling a dynamic query.
	ErrBuildingSQLQuery = errors.New("error building SQL query")

	// ErrExecutingQuery indicates a driver-level failure running a query.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow indicates a failure scanning a single result row.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows indicates a failure iterating a result set.
	ErrScanningRows = errors.New("error scanning rows")
)
