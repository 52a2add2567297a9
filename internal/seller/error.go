package seller

import "errors"

var (
	ErrEmailExists     = errors.New("email already in use")
	ErrUsernameExists  = errors.New("username already in use")
	ErrSellerNotFound  = errors.New("seller not found")
	ErrInvalidPassword = errors.New("invalid password")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
