package domain

import "errors"

// Sentinel errors matched with errors.Is at the HTTP boundary.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrInvalidName   = errors.New("invalid hotel name")
	ErrNoValidImages = errors.New("no valid image URLs provided")
	ErrAllDuplicate  = errors.New("all images already exist for this hotel")
)
