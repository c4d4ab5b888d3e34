// Package summarizer composes the prompts sent to the generative-text
// service for meeting transcript summarization.
package summarizer

import "strings"

const transcriptLeadIn = "Here's the transcript:\n"

// defaultTemplate is the fixed four-section summary instruction used
// when no custom instruction is supplied.
const defaultTemplate = `Please analyze this meeting transcript and provide a comprehensive summary with the following structure:
1. Key Discussion Points
2. Action Items
3. Decisions Made
4. Next Steps

` + transcriptLeadIn

// BuildPrompt composes the final prompt from the transcript text and an
// optional custom instruction. A whitespace-only instruction falls back
// to the default template.
func BuildPrompt(transcript, customInstruction string) string {
	if custom := strings.TrimSpace(customInstruction); custom != "" {
		return custom + "\n\n" + transcriptLeadIn + transcript
	}
	return defaultTemplate + transcript
}
