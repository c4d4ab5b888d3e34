package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadedDocument holds metadata about the transcript file currently
// loaded into a session. The raw bytes are not retained past the upload
// request; only the extracted text survives.
type UploadedDocument struct {
	FileName    string   `json:"file_name"`
	FileType    FileType `json:"file_type"`
	ContentType string   `json:"content_type"`
	SizeBytes   int64    `json:"size_bytes"`
}

// Summary is the result of one generation action. Failed marks the
// fail-soft case where Text carries an error message instead of a
// model-produced summary.
type Summary struct {
	Text        string    `json:"text"`
	ModelUsed   string    `json:"model_used,omitempty"`
	Failed      bool      `json:"failed"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Session is the unit of interactive state. At most one transcript and
// one summary are live at a time; a new upload or generation replaces
// the previous value, never appends.
type Session struct {
	ID         uuid.UUID         `json:"id"`
	State      SessionState      `json:"state"`
	Document   *UploadedDocument `json:"document,omitempty"`
	Transcript string            `json:"-"`
	Summary    *Summary          `json:"summary,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
