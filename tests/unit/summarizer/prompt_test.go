package summarizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"recapd/internal/summarizer"
)

func TestBuildPrompt_DefaultTemplate(t *testing.T) {
	transcript := "Alice proposed X."

	prompt := summarizer.BuildPrompt(transcript, "")

	assert.True(t, strings.HasPrefix(prompt, "Please analyze this meeting transcript"))
	assert.Contains(t, prompt, "Key Discussion Points")
	assert.Contains(t, prompt, "Action Items")
	assert.Contains(t, prompt, "Decisions Made")
	assert.Contains(t, prompt, "Next Steps")
	assert.Contains(t, prompt, "Here's the transcript:")
	assert.True(t, strings.HasSuffix(prompt, transcript))
}

func TestBuildPrompt_WhitespaceOnlyCustomFallsBackToDefault(t *testing.T) {
	prompt := summarizer.BuildPrompt("some transcript", "   \n\t ")

	assert.True(t, strings.HasPrefix(prompt, "Please analyze this meeting transcript"))
}

func TestBuildPrompt_CustomInstruction(t *testing.T) {
	transcript := "Bob presented the roadmap."
	custom := "Summarize focusing on technical decisions."

	prompt := summarizer.BuildPrompt(transcript, custom)

	assert.Equal(t, custom+"\n\nHere's the transcript:\n"+transcript, prompt)
}

func TestBuildPrompt_CustomInstructionTrimmed(t *testing.T) {
	prompt := summarizer.BuildPrompt("text", "  focus on action items  ")

	assert.Equal(t, "focus on action items\n\nHere's the transcript:\ntext", prompt)
}

// Scenario from the product workflow: a plain text upload with no custom
// prompt yields the four fixed headings plus the transcript verbatim.
func TestBuildPrompt_NotesScenario(t *testing.T) {
	transcript := "Alice proposed X."

	prompt := summarizer.BuildPrompt(transcript, "")

	for _, heading := range []string{
		"1. Key Discussion Points",
		"2. Action Items",
		"3. Decisions Made",
		"4. Next Steps",
	} {
		assert.Contains(t, prompt, heading)
	}
	assert.Contains(t, prompt, transcript)
}
