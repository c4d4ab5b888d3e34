package reader_test

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recapd/internal/domain"
	"recapd/internal/port"
	"recapd/internal/reader"
)

// docxBytes builds a minimal OOXML container where each paragraph holds
// the given runs.
func docxBytes(t *testing.T, paragraphs ...[]string) []byte {
	t.Helper()

	var doc strings.Builder
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, runs := range paragraphs {
		doc.WriteString(`<w:p>`)
		for _, run := range runs {
			doc.WriteString(`<w:r><w:t>` + run + `</w:t></w:r>`)
		}
		doc.WriteString(`</w:p>`)
	}
	doc.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(doc.String()))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestReader_Extract_TXT_ExactDecode(t *testing.T) {
	r := reader.New()
	content := "Alice proposed X.\nBob agreed — résumé at 14:00.\n"

	text, err := r.Extract(port.ExtractInput{
		FileBytes: []byte(content),
		FileType:  domain.FileTypeTXT,
	})

	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestReader_Extract_TXT_InvalidUTF8(t *testing.T) {
	r := reader.New()

	_, err := r.Extract(port.ExtractInput{
		FileBytes: []byte{0xff, 0xfe, 0xfd},
		FileType:  domain.FileTypeTXT,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidEncoding)
}

func TestReader_Extract_DOCX_ParagraphOrder(t *testing.T) {
	r := reader.New()
	data := docxBytes(t,
		[]string{"First paragraph."},
		[]string{"Second paragraph."},
		[]string{"Third paragraph."},
	)

	text, err := r.Extract(port.ExtractInput{
		FileBytes: data,
		FileType:  domain.FileTypeDOCX,
	})

	require.NoError(t, err)
	assert.Equal(t, "First paragraph.\nSecond paragraph.\nThird paragraph.", text)
}

func TestReader_Extract_DOCX_MultipleRunsPerParagraph(t *testing.T) {
	r := reader.New()
	data := docxBytes(t,
		[]string{"Alice ", "proposed ", "X."},
		[]string{"Bob agreed."},
	)

	text, err := r.Extract(port.ExtractInput{
		FileBytes: data,
		FileType:  domain.FileTypeDOCX,
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice proposed X.\nBob agreed.", text)
}

func TestReader_Extract_DOCX_EmptyParagraphPreserved(t *testing.T) {
	r := reader.New()
	data := docxBytes(t,
		[]string{"Before the gap."},
		[]string{},
		[]string{"After the gap."},
	)

	text, err := r.Extract(port.ExtractInput{
		FileBytes: data,
		FileType:  domain.FileTypeDOCX,
	})

	require.NoError(t, err)
	assert.Equal(t, "Before the gap.\n\nAfter the gap.", text)
}

func TestReader_Extract_DOC_SameContainerReader(t *testing.T) {
	r := reader.New()
	data := docxBytes(t, []string{"Legacy extension, same container."})

	text, err := r.Extract(port.ExtractInput{
		FileBytes: data,
		FileType:  domain.FileTypeDOC,
	})

	require.NoError(t, err)
	assert.Equal(t, "Legacy extension, same container.", text)
}

func TestReader_Extract_DOCX_NotAContainer(t *testing.T) {
	r := reader.New()

	_, err := r.Extract(port.ExtractInput{
		FileBytes: []byte("this is definitely not a zip archive"),
		FileType:  domain.FileTypeDOCX,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestReader_Extract_DOCX_MissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	r := reader.New()
	_, err = r.Extract(port.ExtractInput{
		FileBytes: buf.Bytes(),
		FileType:  domain.FileTypeDOCX,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestReader_Extract_UnsupportedFileType(t *testing.T) {
	r := reader.New()

	_, err := r.Extract(port.ExtractInput{
		FileBytes: []byte("data"),
		FileType:  domain.FileType("pdf"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}
