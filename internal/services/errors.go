package services

import "errors"

// Sentinel errors translated to HTTP status codes in the handlers.
var (
	ErrBuildingNotFound     = errors.New("building not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrMaxActivityDepth     = errors.New("maximum nesting depth exceeded (3 levels)")
	ErrInvalidPhoneNumber   = errors.New("invalid phone number format")
)
