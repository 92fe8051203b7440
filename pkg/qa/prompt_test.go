package qa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/pkg/answers"
)

func intPtr(n int) *int { return &n }

func TestRenderAnswerCount(t *testing.T) {
	assert.Equal(t, "exactly 1 answer", renderAnswerCount(1, intPtr(1)))
	assert.Equal(t, "exactly 3 answers", renderAnswerCount(3, intPtr(3)))
	assert.Equal(t, "at least 2 answers", renderAnswerCount(2, nil))
	assert.Equal(t, "between 1 and 5 answers", renderAnswerCount(1, intPtr(5)))
}

func TestComposeAgentPromptSectionOrder(t *testing.T) {
	prompt := ComposeAgentPrompt(PromptInput{
		Question: Question{Text: "What is the notice period?", Type: answers.TypeText, MinAnswers: 1, MaxAnswers: intPtr(1)},
		Docs:     []*ent.Document{{ID: 4, Filename: "contract.pdf"}},
		Style:    StyleStandard,
	})

	// Four fixed parts in order.
	orchestration := strings.Index(prompt, "chunk_search")
	analysis := strings.Index(prompt, "Analysis style: standard")
	format := strings.Index(prompt, `"answer_found"`)
	task := strings.Index(prompt, "Question: What is the notice period?")
	require.True(t, orchestration >= 0 && analysis >= 0 && format >= 0 && task >= 0)
	assert.Less(t, orchestration, analysis)
	assert.Less(t, analysis, format)
	assert.Less(t, format, task)

	assert.Contains(t, prompt, "id 4: contract.pdf")
	assert.Contains(t, prompt, "exactly 1 answer")
	assert.Contains(t, prompt, answers.SentinelNotFound)
}

func TestComposeAgentPromptSelectOptions(t *testing.T) {
	prompt := ComposeAgentPrompt(PromptInput{
		Question: Question{
			Text:       "Which governing law applies?",
			Type:       answers.TypeSelect,
			Options:    []SelectOption{{ID: 1, Value: "Delaware"}, {ID: 2, Value: "New York"}},
			MinAnswers: 1,
		},
		Docs:  []*ent.Document{{ID: 9, Filename: "msa.pdf"}},
		Style: StyleStandard,
	})

	assert.Contains(t, prompt, `"type": "select"`)
	assert.Contains(t, prompt, "id 1: Delaware")
	assert.Contains(t, prompt, "id 2: New York")
	assert.Contains(t, prompt, "at least 1 answer")
}

func TestComposeAgentPromptCorrelationStyle(t *testing.T) {
	prompt := ComposeAgentPrompt(PromptInput{
		Question: Question{Text: "Do the contracts agree?", Type: answers.TypeText, MinAnswers: 1, MaxAnswers: intPtr(1)},
		Docs:     []*ent.Document{{ID: 1, Filename: "a.pdf"}, {ID: 2, Filename: "b.pdf"}},
		Style:    StyleCorrelation,
	})
	assert.Contains(t, prompt, "Analysis style: correlation")
	assert.NotContains(t, prompt, "Analysis style: standard")
}

func TestComposeAgentPromptFeedbackAppended(t *testing.T) {
	prompt := ComposeAgentPrompt(PromptInput{
		Question: Question{Text: "Q", Type: answers.TypeText, MinAnswers: 1, MaxAnswers: intPtr(1)},
		Docs:     []*ent.Document{{ID: 1, Filename: "a.pdf"}},
		Style:    StyleStandard,
		Feedback: "Some citations could not be verified",
	})
	assert.True(t, strings.HasSuffix(strings.TrimSpace(prompt), "Some citations could not be verified"))
}
