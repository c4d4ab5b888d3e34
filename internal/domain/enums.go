package domain

// FileType represents the allowed transcript file types for upload.
type FileType string

const (
	FileTypeTXT  FileType = "txt"
	FileTypeDOCX FileType = "docx"
	FileTypeDOC  FileType = "doc"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"txt":  FileTypeTXT,
	"docx": FileTypeDOCX,
	"doc":  FileTypeDOC,
}

// SessionState represents the lifecycle of an interactive session.
type SessionState string

const (
	// SessionStateEmpty is a freshly created session with nothing uploaded.
	SessionStateEmpty SessionState = "empty"
	// SessionStateFileLoaded means a transcript has been extracted and stored.
	SessionStateFileLoaded SessionState = "file_loaded"
	// SessionStateSummaryReady means a summary (or its fail-soft error text)
	// is available for display and download.
	SessionStateSummaryReady SessionState = "summary_ready"
)

// ExportFormat represents the supported summary download formats.
type ExportFormat string

const (
	ExportFormatTXT  ExportFormat = "txt"
	ExportFormatDOCX ExportFormat = "docx"
)
