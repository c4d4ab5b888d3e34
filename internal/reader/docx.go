package reader

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"recapd/internal/domain"
)

const documentPart = "word/document.xml"

// docxDocument maps the parts of word/document.xml we care about.
// Namespace prefixes are ignored by encoding/xml, so w:body/w:p/w:r/w:t
// match on local names. Only body-level paragraphs are extracted, in
// document order.
type docxDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    docxBody `xml:"body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"p"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Texts []string `xml:"t"`
}

// extractDOCX parses the byte buffer as an OOXML container and joins
// every paragraph's text with newline separators.
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: opening container: %v", domain.ErrMalformedDocument, err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", fmt.Errorf("%w: missing %s", domain.ErrMalformedDocument, documentPart)
	}

	rc, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %v", domain.ErrMalformedDocument, documentPart, err)
	}
	defer func() { _ = rc.Close() }()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", domain.ErrMalformedDocument, documentPart, err)
	}

	var doc docxDocument
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("%w: parsing %s: %v", domain.ErrMalformedDocument, documentPart, err)
	}

	paragraphs := make([]string, 0, len(doc.Body.Paragraphs))
	for _, p := range doc.Body.Paragraphs {
		var sb strings.Builder
		for _, r := range p.Runs {
			for _, t := range r.Texts {
				sb.WriteString(t)
			}
		}
		paragraphs = append(paragraphs, sb.String())
	}

	return strings.Join(paragraphs, "\n"), nil
}
