package domain

import "errors"

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEmptyDocument       = errors.New("document carries no content")
	ErrInvalidRecord       = errors.New("invoice record does not match expected format")
	ErrExtractorOffline    = errors.New("no extraction provider is configured")
)
