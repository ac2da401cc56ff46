package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrUnsupportedLanguage = errors.New("unsupported stemming language")
	ErrStemmingDisabled    = errors.New("stemming not enabled")
)
