package utils

import "errors"

// Sentinel errors services return and handlers translate to HTTP responses.
// Anything not in this list is treated as an upstream failure: logged with
// detail server-side, reported to the client as a generic message.
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrUnauthorized       = errors.New("insufficient permissions")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("record not found")
	ErrWrongRole          = errors.New("operation not allowed for this account role")
	ErrAlreadyExists      = errors.New("record already exists")
	ErrNoRewardsAvailable = errors.New("no rewards to redeem")
	ErrValidation         = errors.New("validation failed")
)
