package config

import "errors"

var (
	// ErrMissingField indicates a required configuration value is empty.
	ErrMissingField = errors.New("missing required configuration field")
	// ErrInvalidURL indicates a URL field is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid URL")
	// ErrUnknownTarget indicates an unsupported deployment target name.
	ErrUnknownTarget = errors.New("unknown deployment target")
	// ErrTargetMismatch indicates a config file declares a production flag
	// that contradicts the selected target.
	ErrTargetMismatch = errors.New("config file does not match deployment target")
)
