package domain

import "errors"

// Account / credential errors.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// Token verification failures. Internal components distinguish the subkinds;
// the HTTP boundary collapses all of them into ErrUnauthenticated.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature mismatch")
	ErrTokenExpired   = errors.New("token expired")
)

// Catalog / account-data errors.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrAddressNotFound   = errors.New("address not found")
	ErrWishlistDuplicate = errors.New("product already in wishlist")
	ErrWishlistNotFound  = errors.New("product not in wishlist")
)

// ValidationError reports a rejected input field. It is produced before any
// storage or crypto call and is always recoverable by resubmitting.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
