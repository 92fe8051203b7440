package answers

import (
	"context"
	"fmt"
	"strings"

	"github.com/agext/levenshtein"
)

// Grounding score tiers.
const (
	scoreExact      = 1.0
	scoreNormalized = 0.95
	// fuzzyGrounded and fuzzyWarning bound the partial-ratio bands:
	// >= 0.90 grounded, >= 0.70 grounded with warning, below ungrounded.
	fuzzyGrounded = 0.90
	fuzzyWarning  = 0.70

	// retryThreshold is the set-average below which a retry is requested.
	retryThreshold = 0.70
)

// ContentLoader fetches the extracted content of a document. Returning
// an empty string means the content is unavailable.
type ContentLoader func(ctx context.Context, documentID int) (string, error)

// GroundingResult scores one citation against its document.
type GroundingResult struct {
	DocumentID    int     `json:"document_id"`
	CitationOrder int     `json:"citation_order"`
	Grounded      bool    `json:"grounded"`
	Score         float64 `json:"score"`
	Warning       bool    `json:"warning,omitempty"`
	Error         string  `json:"error,omitempty"`
}

// SetValidation is the set-level grounding outcome.
type SetValidation struct {
	Results      []GroundingResult `json:"results"`
	AverageScore float64           `json:"average_score"`
	// NeedsRetry is set when the average falls below the retry
	// threshold; Feedback then carries the message for the agent.
	NeedsRetry bool   `json:"needs_retry"`
	Feedback   string `json:"feedback,omitempty"`
}

// Validator checks citations against document content.
type Validator struct {
	load ContentLoader
}

// NewValidator creates a grounding validator.
func NewValidator(load ContentLoader) *Validator {
	return &Validator{load: load}
}

// ValidateCitation scores one citation. Match tiers: exact substring
// (1.0), whitespace-normalized lowercase substring (0.95), then partial
// fuzzy ratio of the normalized strings.
func (v *Validator) ValidateCitation(ctx context.Context, c Citation) GroundingResult {
	result := GroundingResult{DocumentID: c.DocumentID, CitationOrder: c.CitationOrder}

	if c.DocumentID == 0 || strings.TrimSpace(c.QuoteText) == "" {
		result.Error = "citation missing document_id or quote_text"
		return result
	}

	content, err := v.load(ctx, c.DocumentID)
	if err != nil || content == "" {
		result.Error = "document content unavailable"
		return result
	}

	if strings.Contains(content, c.QuoteText) {
		result.Grounded = true
		result.Score = scoreExact
		return result
	}

	normQuote := normalize(c.QuoteText)
	normContent := normalize(content)
	if strings.Contains(normContent, normQuote) {
		result.Grounded = true
		result.Score = scoreNormalized
		return result
	}

	ratio := partialRatio(normQuote, normContent)
	result.Score = ratio
	switch {
	case ratio >= fuzzyGrounded:
		result.Grounded = true
	case ratio >= fuzzyWarning:
		result.Grounded = true
		result.Warning = true
	default:
		result.Error = "Quote not found"
	}
	return result
}

// ValidateSet scores every citation in the payload and derives the
// set-level decision. Answers without citations contribute nothing.
func (v *Validator) ValidateSet(ctx context.Context, payload *AnswerSetPayload) *SetValidation {
	validation := &SetValidation{AverageScore: 1.0}
	if !payload.AnswerFound {
		return validation
	}

	var total float64
	for _, answer := range payload.Answers {
		for _, citation := range answer.Citations {
			result := v.ValidateCitation(ctx, citation)
			validation.Results = append(validation.Results, result)
			total += result.Score
		}
	}
	if len(validation.Results) == 0 {
		return validation
	}

	validation.AverageScore = total / float64(len(validation.Results))
	if validation.AverageScore < retryThreshold {
		validation.NeedsRetry = true
		validation.Feedback = buildFeedback(validation.Results)
	}
	return validation
}

// ApplyConfidencePenalty scales every answer's confidence by the final
// average score. Called on the last pass when the average is below 1.0.
func ApplyConfidencePenalty(payload *AnswerSetPayload, averageScore float64) {
	if averageScore >= 1.0 {
		return
	}
	for i := range payload.Answers {
		payload.Answers[i].Confidence *= averageScore
	}
}

// buildFeedback enumerates the ungrounded citations for the retry prompt.
func buildFeedback(results []GroundingResult) string {
	var b strings.Builder
	b.WriteString("Some citations could not be verified against the source documents:\n")
	for _, r := range results {
		if r.Grounded {
			continue
		}
		reason := r.Error
		if reason == "" {
			reason = "quote did not match"
		}
		fmt.Fprintf(&b, "- citation %d (document %d): %s\n", r.CitationOrder, r.DocumentID, reason)
	}
	b.WriteString("Every quote_text must be copied exactly, character for character, from the document content. Re-answer with corrected citations.")
	return b.String()
}

// normalize lowercases and collapses all whitespace runs to single
// spaces.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// partialRatio is the best Levenshtein similarity between needle and any
// equal-length window of hay. A coarse scan locates the best region and
// a fine scan refines it.
func partialRatio(needle, hay string) float64 {
	if needle == "" || hay == "" {
		return 0
	}
	n := len(needle)
	if len(hay) <= n {
		return levenshtein.Similarity(needle, hay, nil)
	}

	step := n / 5
	if step < 1 {
		step = 1
	}

	best, bestPos := 0.0, 0
	for i := 0; i+n <= len(hay); i += step {
		if s := levenshtein.Similarity(needle, hay[i:i+n], nil); s > best {
			best, bestPos = s, i
		}
	}

	lo := bestPos - step
	if lo < 0 {
		lo = 0
	}
	hi := bestPos + step
	if hi > len(hay)-n {
		hi = len(hay) - n
	}
	for i := lo; i <= hi; i++ {
		if s := levenshtein.Similarity(needle, hay[i:i+n], nil); s > best {
			best = s
		}
	}
	return best
}
