package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail      = errors.New("invalid email")
	ErrEmptyFullName     = errors.New("full name is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidPostID     = errors.New("invalid post ID")
	ErrEmptyDestination  = errors.New("destination is required")
	ErrEmptyDate         = errors.New("date is required")
	ErrInvalidVisibility = errors.New("visibility must be public or private")
	ErrInvalidPrice      = errors.New("price must be non-negative")
)
