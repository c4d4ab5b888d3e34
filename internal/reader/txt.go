package reader

import (
	"fmt"
	"unicode/utf8"

	"recapd/internal/domain"
)

// extractTXT decodes the bytes as UTF-8 text verbatim.
func extractTXT(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("decoding text file: %w", domain.ErrInvalidEncoding)
	}
	return string(data), nil
}
