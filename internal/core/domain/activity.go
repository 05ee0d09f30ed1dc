package domain

import "time"

// ActivityKind labels one account activity event.
type ActivityKind string

const (
	ActivitySignup        ActivityKind = "signup"
	ActivityLogin         ActivityKind = "login"
	ActivityLoginFailed   ActivityKind = "login_failed"
	ActivityTokenRejected ActivityKind = "token_rejected"
)

// AccountActivity is a diagnostic record of an auth-related event, persisted
// asynchronously. It never carries credentials.
type AccountActivity struct {
	ID    string       `json:"id"`
	Email string       `json:"email"`
	Kind  ActivityKind `json:"kind"`
	At    time.Time    `json:"at"`
}
