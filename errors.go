package slidemacro

import "errors"

// Sentinel errors for library operations.
var (
	// Highlighter errors.
	ErrUnknownLanguage = errors.New("unknown language")
	ErrHighlight       = errors.New("highlighting failed")

	// Config errors.
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrUnknownStyle   = errors.New("unknown highlighting style")
)
