package port

import "recapd/internal/domain"

// ExtractInput carries the data needed for transcript extraction.
type ExtractInput struct {
	FileBytes []byte
	FileType  domain.FileType
}

// DocumentReader abstracts per-format transcript text extraction.
// Implementations are pure transforms of bytes to text.
type DocumentReader interface {
	Extract(input ExtractInput) (string, error)
}
