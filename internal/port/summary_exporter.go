package port

// SummaryExporter renders summary text into a downloadable document.
type SummaryExporter interface {
	Export(title, summary string) ([]byte, error)
}
