package domain

import "errors"

var (
	ErrEmptyDescription    = errors.New("empty description")
	ErrProviderFailure     = errors.New("provider failure")
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrUnsupportedProvider = errors.New("unsupported provider")
	ErrUnsupportedFormat   = errors.New("unsupported format")
)
