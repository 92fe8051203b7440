package answers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONSentinel(t *testing.T) {
	got, err := ExtractJSON("I looked everywhere.\n<<ANSWER_NOT_FOUND>>\nSorry.")
	require.NoError(t, err)
	assert.Equal(t, SentinelNotFound, got)
}

func TestExtractJSONSentinelWinsOverJSON(t *testing.T) {
	// The sentinel takes precedence even when JSON is also present.
	got, err := ExtractJSON(`<<ANSWER_NOT_FOUND>> {"answer_found": true}`)
	require.NoError(t, err)
	assert.Equal(t, SentinelNotFound, got)
}

func TestExtractJSONFencedBlock(t *testing.T) {
	response := "Here is my answer:\n```json\n{\"answer_found\": true, \"answers\": []}\n```\nDone."
	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer_found": true, "answers": []}`, got)
}

func TestExtractJSONFirstObject(t *testing.T) {
	response := `Some preamble {not json} and then {"answer_found": false} trailing text`
	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer_found": false}`, got)
}

func TestExtractJSONNestedObject(t *testing.T) {
	response := `prefix {"answer_found": true, "answers": [{"type": "text", "value": "a {brace} inside", "confidence": 0.9}]} suffix`
	got, err := ExtractJSON(response)
	require.NoError(t, err)

	payload, err := ParsePayload(got)
	require.NoError(t, err)
	assert.Equal(t, "a {brace} inside", payload.Answers[0].Value)
}

func TestExtractJSONNothing(t *testing.T) {
	_, err := ExtractJSON("no structured content here at all")
	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestParsePayloadSentinel(t *testing.T) {
	payload, err := ParsePayload(SentinelNotFound)
	require.NoError(t, err)
	assert.False(t, payload.AnswerFound)
	assert.Empty(t, payload.Answers)
}

func TestParsePayloadInvariants(t *testing.T) {
	// answer_found=false forbids answers.
	_, err := ParsePayload(`{"answer_found": false, "answers": [{"type": "text", "value": "x", "confidence": 0.5}]}`)
	assert.Error(t, err)

	// answer_found=true requires at least one.
	_, err = ParsePayload(`{"answer_found": true, "answers": []}`)
	assert.Error(t, err)

	// Confidence bounds.
	_, err = ParsePayload(`{"answer_found": true, "answers": [{"type": "text", "value": "x", "confidence": 1.5}]}`)
	assert.Error(t, err)
}

func TestAnswerVariants(t *testing.T) {
	amount := 1250.50
	optionID := 3

	cases := []struct {
		name   string
		answer Answer
		data   map[string]interface{}
	}{
		{
			name:   "text",
			answer: Answer{Type: TypeText, Value: "Acme Corp", Confidence: 0.9},
			data:   map[string]interface{}{"value": "Acme Corp"},
		},
		{
			name:   "date",
			answer: Answer{Type: TypeDate, Value: "March 1st, 2026", ParsedDate: "2026-03-01", Confidence: 0.8},
			data:   map[string]interface{}{"value": "March 1st, 2026", "parsed_date": "2026-03-01"},
		},
		{
			name:   "currency",
			answer: Answer{Type: TypeCurrency, Value: "$1,250.50", Amount: &amount, Currency: "USD", Confidence: 0.95},
			data:   map[string]interface{}{"value": "$1,250.50", "amount": 1250.50, "currency": "USD"},
		},
		{
			name:   "select",
			answer: Answer{Type: TypeSelect, OptionID: &optionID, OptionValue: "Yes", Confidence: 1.0},
			data:   map[string]interface{}{"option_id": 3, "option_value": "Yes"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.answer.Validate())
			assert.Equal(t, tc.data, tc.answer.Data())
		})
	}
}

func TestAnswerValidateRejections(t *testing.T) {
	assert.Error(t, Answer{Type: TypeText, Confidence: 0.5}.Validate(), "text without value")
	assert.Error(t, Answer{Type: TypeSelect, Confidence: 0.5}.Validate(), "select without option_id")
	assert.Error(t, Answer{Type: "boolean", Value: "x", Confidence: 0.5}.Validate(), "unknown type")
}
