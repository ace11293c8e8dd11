package entity

import "errors"

// Standard domain errors
var (
	ErrMissingAPIKey    = errors.New("GEMINI_API_KEY is required")
	ErrNoUsableModel    = errors.New("no candidate model answered the startup probe")
	ErrEmptyCompletion  = errors.New("model returned an empty completion")
	ErrInvalidRequest   = errors.New("invalid request parameters")
	ErrProviderNotReady = errors.New("completion provider not initialized")
)
