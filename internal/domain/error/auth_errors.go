// Package error defines domain-specific errors for the MeetCute client.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrEmailAlreadyExists is returned when signing up with a taken email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials are rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrNoSession is returned when an operation needs a signed-in user but
	// no usable session is stored on the device.
	ErrNoSession = errors.New("no active session")

	// ErrTermsNotAccepted is returned when the user has not accepted the
	// terms of service during signup.
	ErrTermsNotAccepted = errors.New("terms of service must be accepted")

	// ErrWeakPassword is returned when the password policy rejects the
	// chosen password.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")
)

// Code identifies an error returned by the remote API.
// Format: XXX-YYZZZZ where XXX is the resource, YY the category.
type Code string

const (
	// Signup errors (01ZZZZ)
	CodeEmailExists      Code = "AUTH-010001"
	CodeTermsNotAccepted Code = "AUTH-010002"
	CodeWeakPassword     Code = "AUTH-010003"

	// Login errors (02ZZZZ)
	CodeInvalidCredentials Code = "AUTH-020001"

	// Token errors (03ZZZZ)
	CodeInvalidToken Code = "AUTH-030001"
	CodeExpiredToken Code = "AUTH-030002"
)
