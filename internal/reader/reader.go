// Package reader extracts plain transcript text from uploaded documents.
package reader

import (
	"fmt"

	"recapd/internal/domain"
	"recapd/internal/port"
)

// extractor is a per-format text extraction function.
type extractor func(data []byte) (string, error)

// registry of extractors keyed by file type.
var extractors = map[domain.FileType]extractor{
	domain.FileTypeTXT: extractTXT,
	// .doc uploads go through the OOXML extractor too; legacy binary
	// .doc files fail there as malformed.
	domain.FileTypeDOCX: extractDOCX,
	domain.FileTypeDOC:  extractDOCX,
}

// Reader implements port.DocumentReader over the extractor registry.
type Reader struct{}

// New creates a document reader.
func New() *Reader {
	return &Reader{}
}

// Extract returns the text content of the document. Unsupported file
// types are rejected upstream at the upload boundary; hitting one here
// is a programming error surfaced as ErrUnsupportedFileType.
func (r *Reader) Extract(input port.ExtractInput) (string, error) {
	extract, ok := extractors[input.FileType]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, input.FileType)
	}
	return extract(input.FileBytes)
}
