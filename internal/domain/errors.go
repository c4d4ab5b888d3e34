package domain

import "errors"

var (
	ErrSessionNotFound         = errors.New("session not found")
	ErrUnsupportedFileType     = errors.New("unsupported file type")
	ErrFileTooLarge            = errors.New("file exceeds maximum allowed size")
	ErrInvalidEncoding         = errors.New("file is not valid UTF-8 text")
	ErrMalformedDocument       = errors.New("file is not a valid word-processor document")
	ErrEmptyDocument           = errors.New("document contains no text")
	ErrNoTranscript            = errors.New("no transcript has been uploaded")
	ErrNoSummary               = errors.New("no summary has been generated")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
