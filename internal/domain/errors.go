package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrProviderFailure     = errors.New("provider failure")
	ErrUnsupportedFormat   = errors.New("unsupported image format")
	ErrImageTooLarge       = errors.New("image too large")
)
