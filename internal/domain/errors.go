package domain

import "errors"

var (
	// ErrUnsupportedLanguage indicates an extension that cannot be resolved
	// or a language tag that is not known. The file is skipped.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrFileAccess indicates a source file could not be read.
	ErrFileAccess = errors.New("file access error")

	// ErrConfigUnavailable indicates the configuration path is unusable.
	// This is the only fatal error of a run.
	ErrConfigUnavailable = errors.New("configuration unavailable")

	// ErrWriteFailure indicates annotated output could not be written.
	ErrWriteFailure = errors.New("write failure")
)
