package export

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocxExporter_Export_ProducesContainer(t *testing.T) {
	e := NewDocxExporter()

	summary := "# Meeting Summary\n\n## Key Discussion Points\n- Alice proposed **X**\n- Budget review\n\n1. Follow up with Bob\n\nPlain closing remark."
	data, err := e.Export("Meeting Summary", summary)

	require.NoError(t, err)
	require.NotEmpty(t, data)

	// A docx file is a zip container with a word/document.xml part.
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var found bool
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			found = true
			break
		}
	}
	assert.True(t, found, "expected word/document.xml in exported container")
}

func TestDocxExporter_Export_EmptySummary(t *testing.T) {
	e := NewDocxExporter()

	data, err := e.Export("Meeting Summary", "")

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestCleanMarkdownInline(t *testing.T) {
	assert.Equal(t, "bold and code", cleanMarkdownInline("**bold** and `code`"))
	assert.Equal(t, "underline", cleanMarkdownInline("__underline__"))
}
