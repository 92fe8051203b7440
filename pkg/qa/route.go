// Package qa routes questions between the local LLM path and sandboxed
// agent processing, composes agent prompts, and dispatches QA jobs.
package qa

import (
	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/pkg/answers"
)

// RoutingReason explains a routing decision.
type RoutingReason string

// Routing reasons.
const (
	// ReasonQuestionFlag: the question is explicitly configured for agent
	// processing.
	ReasonQuestionFlag RoutingReason = "QUESTION_FLAG"
	// ReasonDocumentSize: the combined document size exceeds the agent
	// threshold.
	ReasonDocumentSize RoutingReason = "DOCUMENT_SIZE"
	// ReasonDefault: the local path handles it.
	ReasonDefault RoutingReason = "DEFAULT"
)

// RoutingDecision is the outcome of Route.
type RoutingDecision struct {
	UseAgent bool          `json:"use_agent"`
	Reason   RoutingReason `json:"reason"`
	// IsAutoRouted marks agent routing that the size threshold forced
	// rather than question configuration.
	IsAutoRouted bool `json:"is_auto_routed"`
}

// SelectOption is one choice of a select question.
type SelectOption struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// Question is the unit of work routed and answered. Question content
// lives with the caller's workspace; only ids are stored on cells.
type Question struct {
	ID         int                `json:"id"`
	Text       string             `json:"text"`
	Type       answers.AnswerType `json:"type"`
	UseAgentQA bool               `json:"use_agent_qa"`
	// QuestionTypeID is recorded on the resulting answer set.
	QuestionTypeID *int `json:"question_type_id,omitempty"`

	// Options apply to select questions only.
	Options []SelectOption `json:"options,omitempty"`

	// Answer-count constraints. MaxAnswers nil means unbounded.
	MinAnswers int  `json:"min_answers"`
	MaxAnswers *int `json:"max_answers,omitempty"`
}

// Route decides the processing strategy for a question over a document
// set. Pure: the decision depends only on the inputs. A combined size at
// exactly the threshold stays local.
func Route(question Question, docs []*ent.Document, charThreshold int) RoutingDecision {
	if question.UseAgentQA {
		return RoutingDecision{UseAgent: true, Reason: ReasonQuestionFlag}
	}

	totalChars := 0
	for _, doc := range docs {
		totalChars += doc.ExtractedCharCount
	}
	if totalChars > charThreshold {
		return RoutingDecision{UseAgent: true, Reason: ReasonDocumentSize, IsAutoRouted: true}
	}

	return RoutingDecision{UseAgent: false, Reason: ReasonDefault}
}
