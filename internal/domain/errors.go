package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// row does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails the minimal
// required-field checks (e.g. empty school name on a registration).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrTableMissing is returned by repo functions when the backend reports that
// the queried relation does not exist. The admin console treats this as a
// recoverable state and shows remediation SQL instead of a row list.
var ErrTableMissing = errors.New("table missing")

// ErrInvalidCredentials is returned by the auth service on a failed sign-in.
// Handlers map this to HTTP 401 without distinguishing unknown email from
// wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNoSession is returned when a request to the admin surface carries no
// live session token (missing, unknown, or expired).
// Handlers map this to HTTP 401; the front end redirects to the login screen.
var ErrNoSession = errors.New("no session")

// ErrUnknownTab is returned by the admin controller when the requested tab
// key is not in the registry. Handlers map this to HTTP 404.
var ErrUnknownTab = errors.New("unknown tab")
