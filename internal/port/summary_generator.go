package port

import "context"

// SummaryInput carries the composed prompt for one generation action.
type SummaryInput struct {
	Prompt string
}

// SummaryOutput contains the textual result from the generative service.
type SummaryOutput struct {
	Text      string
	ModelUsed string
}

// SummaryGenerator abstracts the external generative-text service.
// A single best-effort request per call; no retries.
type SummaryGenerator interface {
	Generate(ctx context.Context, input SummaryInput) (*SummaryOutput, error)
}
