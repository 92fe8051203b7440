package qa

import (
	"fmt"
	"strings"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/pkg/answers"
)

// AnalysisStyle selects the analysis section of the agent prompt.
type AnalysisStyle string

// Analysis styles.
const (
	StyleStandard    AnalysisStyle = "standard"
	StyleCorrelation AnalysisStyle = "correlation"
)

// PromptInput carries everything the agent prompt needs.
type PromptInput struct {
	Question Question
	Docs     []*ent.Document
	Style    AnalysisStyle
	// Feedback from a failed grounding pass; appended to the task
	// context on retries.
	Feedback string
}

// ComposeAgentPrompt builds the agent prompt from its four fixed parts in
// order: orchestration, analysis style, output format, task context.
func ComposeAgentPrompt(in PromptInput) string {
	parts := []string{
		orchestrationSection(),
		analysisSection(in.Style),
		outputFormatSection(in.Question.Type),
		taskContextSection(in),
	}
	return strings.Join(parts, "\n\n")
}

func orchestrationSection() string {
	return strings.TrimSpace(`
You answer questions about documents you cannot read directly. Use the
provided tools to work with the corpus:
- chunk_search: hybrid search over the document chunks. Start here.
- chunk_get: fetch the full text of a chunk found via search.
- document_list: list the documents in scope with their ids.
Search with several phrasings before concluding an answer is absent.
Every quote you cite must be copied exactly from chunk content.`)
}

func analysisSection(style AnalysisStyle) string {
	if style == StyleCorrelation {
		return strings.TrimSpace(`
Analysis style: correlation. Compare the documents against each other.
Identify agreements, contradictions, and gaps between them; the answer
must reflect the relationship, not any single document alone.`)
	}
	return strings.TrimSpace(`
Analysis style: standard. Answer the question from the document content.
Prefer primary statements over summaries; when documents conflict, cite
both sides.`)
}

// outputFormatSection renders the JSON schema the agent must produce for
// the question type.
func outputFormatSection(t answers.AnswerType) string {
	var variant string
	switch t {
	case answers.TypeDate:
		variant = `{"type": "date", "value": "<raw text>", "parsed_date": "<ISO-8601 or omit>", "confidence": <0..1>, "citations": [...]}`
	case answers.TypeCurrency:
		variant = `{"type": "currency", "value": "<raw text>", "amount": <number or omit>, "currency": "<ISO-4217 or omit>", "confidence": <0..1>, "citations": [...]}`
	case answers.TypeSelect:
		variant = `{"type": "select", "option_id": <id from the option list>, "option_value": "<option text>", "confidence": <0..1>, "citations": [...]}`
	default:
		variant = `{"type": "text", "value": "<answer text>", "confidence": <0..1>, "citations": [...]}`
	}
	return strings.TrimSpace(fmt.Sprintf(`
Respond with a single fenced json block:
{"answer_found": true, "answers": [%s]}
Each citation is {"document_id": <id>, "quote_text": "<exact quote>", "citation_order": <1-based>}.
If the documents do not answer the question, respond with exactly:
%s`, variant, answers.SentinelNotFound))
}

func taskContextSection(in PromptInput) string {
	var b strings.Builder
	b.WriteString("Question: ")
	b.WriteString(in.Question.Text)
	b.WriteString("\n\nDocuments in scope:\n")
	for _, doc := range in.Docs {
		fmt.Fprintf(&b, "- id %d: %s\n", doc.ID, doc.Filename)
	}

	if in.Question.Type == answers.TypeSelect && len(in.Question.Options) > 0 {
		b.WriteString("\nOptions:\n")
		for _, opt := range in.Question.Options {
			fmt.Fprintf(&b, "- id %d: %s\n", opt.ID, opt.Value)
		}
	}

	fmt.Fprintf(&b, "\nProvide %s.", renderAnswerCount(in.Question.MinAnswers, in.Question.MaxAnswers))

	if in.Feedback != "" {
		b.WriteString("\n\n")
		b.WriteString(in.Feedback)
	}
	return b.String()
}

// renderAnswerCount renders the answer-count constraint deterministically.
func renderAnswerCount(min int, max *int) string {
	switch {
	case max != nil && min == *max && min == 1:
		return "exactly 1 answer"
	case max != nil && min == *max:
		return fmt.Sprintf("exactly %d answers", min)
	case max == nil:
		return fmt.Sprintf("at least %d answers", min)
	default:
		return fmt.Sprintf("between %d and %d answers", min, *max)
	}
}
