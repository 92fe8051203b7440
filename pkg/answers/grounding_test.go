package answers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contractText = `This Agreement is entered into as of March 1, 2026 by and
between Acme Corporation ("Supplier") and Globex Industries ("Customer").
The total contract value shall not exceed $1,250,000 over the initial term.
Either party may terminate with ninety (90) days written notice.`

func staticLoader(docs map[int]string) ContentLoader {
	return func(_ context.Context, id int) (string, error) {
		return docs[id], nil
	}
}

func TestValidateCitationExact(t *testing.T) {
	v := NewValidator(staticLoader(map[int]string{1: contractText}))

	result := v.ValidateCitation(context.Background(), Citation{
		DocumentID:    1,
		QuoteText:     `The total contract value shall not exceed $1,250,000`,
		CitationOrder: 1,
	})
	assert.True(t, result.Grounded)
	assert.Equal(t, 1.0, result.Score)
}

func TestValidateCitationNormalized(t *testing.T) {
	v := NewValidator(staticLoader(map[int]string{1: contractText}))

	// Different case and collapsed line break: normalized tier.
	result := v.ValidateCitation(context.Background(), Citation{
		DocumentID:    1,
		QuoteText:     "this agreement is entered into as of march 1, 2026 by and between acme corporation",
		CitationOrder: 1,
	})
	assert.True(t, result.Grounded)
	assert.Equal(t, 0.95, result.Score)
}

func TestValidateCitationFuzzy(t *testing.T) {
	v := NewValidator(staticLoader(map[int]string{1: contractText}))

	// One-word paraphrase of a real sentence: close but not a substring.
	result := v.ValidateCitation(context.Background(), Citation{
		DocumentID:    1,
		QuoteText:     "Either party may terminate with ninety (90) days prior notice.",
		CitationOrder: 1,
	})
	assert.True(t, result.Grounded)
	assert.GreaterOrEqual(t, result.Score, 0.70)
	assert.Less(t, result.Score, 0.95)
}

func TestValidateCitationUngrounded(t *testing.T) {
	v := NewValidator(staticLoader(map[int]string{1: contractText}))

	result := v.ValidateCitation(context.Background(), Citation{
		DocumentID:    1,
		QuoteText:     "The moon is made of green cheese and orbits backwards.",
		CitationOrder: 1,
	})
	assert.False(t, result.Grounded)
	assert.Less(t, result.Score, 0.70)
	assert.Equal(t, "Quote not found", result.Error)
}

func TestValidateCitationMissingFields(t *testing.T) {
	v := NewValidator(staticLoader(map[int]string{1: contractText}))
	ctx := context.Background()

	noDoc := v.ValidateCitation(ctx, Citation{QuoteText: "anything"})
	assert.False(t, noDoc.Grounded)
	assert.Zero(t, noDoc.Score)

	noQuote := v.ValidateCitation(ctx, Citation{DocumentID: 1, QuoteText: "   "})
	assert.False(t, noQuote.Grounded)
	assert.Zero(t, noQuote.Score)

	// Unknown document: loader returns empty content.
	unknown := v.ValidateCitation(ctx, Citation{DocumentID: 99, QuoteText: "anything"})
	assert.False(t, unknown.Grounded)
	assert.Equal(t, "document content unavailable", unknown.Error)
}

func TestValidateCitationLoaderError(t *testing.T) {
	v := NewValidator(func(context.Context, int) (string, error) {
		return "", errors.New("storage offline")
	})
	result := v.ValidateCitation(context.Background(), Citation{DocumentID: 1, QuoteText: "x"})
	assert.False(t, result.Grounded)
}

func TestValidateSetAverageAndRetry(t *testing.T) {
	v := NewValidator(staticLoader(map[int]string{1: contractText}))

	payload := &AnswerSetPayload{
		AnswerFound: true,
		Answers: []Answer{{
			Type: TypeText, Value: "Acme Corporation", Confidence: 0.9,
			Citations: []Citation{
				{DocumentID: 1, QuoteText: "Acme Corporation", CitationOrder: 1},
				{DocumentID: 1, QuoteText: "completely fabricated quote about dinosaurs", CitationOrder: 2},
			},
		}},
	}

	validation := v.ValidateSet(context.Background(), payload)
	require.Len(t, validation.Results, 2)
	assert.True(t, validation.Results[0].Grounded)
	assert.False(t, validation.Results[1].Grounded)

	if validation.NeedsRetry {
		assert.Contains(t, validation.Feedback, "citation 2")
		assert.Contains(t, validation.Feedback, "document 1")
		assert.Contains(t, validation.Feedback, "exactly")
	}
}

func TestValidateSetNotFound(t *testing.T) {
	v := NewValidator(staticLoader(nil))
	validation := v.ValidateSet(context.Background(), &AnswerSetPayload{AnswerFound: false})
	assert.Equal(t, 1.0, validation.AverageScore)
	assert.False(t, validation.NeedsRetry)
}

func TestValidateSetNoCitations(t *testing.T) {
	v := NewValidator(staticLoader(nil))
	optionID := 1
	payload := &AnswerSetPayload{
		AnswerFound: true,
		Answers:     []Answer{{Type: TypeSelect, OptionID: &optionID, OptionValue: "Yes", Confidence: 1}},
	}
	validation := v.ValidateSet(context.Background(), payload)
	assert.Equal(t, 1.0, validation.AverageScore)
	assert.False(t, validation.NeedsRetry)
}

func TestApplyConfidencePenalty(t *testing.T) {
	payload := &AnswerSetPayload{
		AnswerFound: true,
		Answers: []Answer{
			{Type: TypeText, Value: "a", Confidence: 0.9},
			{Type: TypeText, Value: "b", Confidence: 0.5},
		},
	}

	ApplyConfidencePenalty(payload, 0.8)
	assert.InDelta(t, 0.72, payload.Answers[0].Confidence, 1e-9)
	assert.InDelta(t, 0.40, payload.Answers[1].Confidence, 1e-9)

	// A perfect average leaves confidence untouched.
	ApplyConfidencePenalty(payload, 1.0)
	assert.InDelta(t, 0.72, payload.Answers[0].Confidence, 1e-9)
}
