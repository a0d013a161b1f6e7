package models

import "time"

// User represents a customer account. It is the record resolved by the
// authentication middleware and attached to the request context, so any
// field placed here is visible to every downstream handler.
type User struct {
	// UserID is the unique identifier of the account (UUID string).
	// It is also the "sub" claim of every token issued for the user.
	UserID string `json:"id"`

	// Name is the display name shown in the frontend.
	Name string `json:"name"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// PasswordHash is the stored credential hash. It MUST never be
	// serialized or attached to a request context; the auth service
	// strips it before the user leaves the service layer.
	PasswordHash string `json:"-"`

	// Role is a free-form label ("user", "admin"). Kept for the frontend;
	// the backend performs no role-based authorization.
	Role string `json:"role"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
