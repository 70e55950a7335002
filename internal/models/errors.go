package models

import "errors"

// Record validation errors
var (
	ErrUnknownType     = errors.New("unknown project type")
	ErrInvalidDate     = errors.New("invalid published date")
	ErrInvalidSlug     = errors.New("invalid slug")
	ErrInvalidOrdering = errors.New("id and sortOrder must be positive")
	ErrMissingTitle    = errors.New("missing title")
	ErrEmptyTech       = errors.New("empty tech name")
	ErrFieldNotAllowed = errors.New("field not allowed for project type")
)
