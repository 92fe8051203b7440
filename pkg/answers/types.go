// Package answers models typed answers with citations, extracts them
// from free-form agent responses, and validates that every citation is
// actually present in the cited document.
package answers

import (
	"fmt"
)

// AnswerType tags the answer variant.
type AnswerType string

// Answer variants.
const (
	TypeText     AnswerType = "text"
	TypeDate     AnswerType = "date"
	TypeCurrency AnswerType = "currency"
	TypeSelect   AnswerType = "select"
)

// Citation points one answer at a source document quote.
type Citation struct {
	DocumentID    int    `json:"document_id"`
	QuoteText     string `json:"quote_text"`
	CitationOrder int    `json:"citation_order"`
}

// Answer is one typed answer. The populated payload fields depend on
// Type; Validate enforces the variant shape.
type Answer struct {
	Type AnswerType `json:"type"`

	// text, date, currency: raw value as the agent produced it.
	Value string `json:"value,omitempty"`

	// date only: ISO-8601 normalization, when the agent could parse it.
	ParsedDate string `json:"parsed_date,omitempty"`

	// currency only.
	Amount   *float64 `json:"amount,omitempty"`
	Currency string   `json:"currency,omitempty"`

	// select only.
	OptionID    *int   `json:"option_id,omitempty"`
	OptionValue string `json:"option_value,omitempty"`

	Confidence float64    `json:"confidence"`
	Citations  []Citation `json:"citations,omitempty"`
}

// AnswerSetPayload is the top-level JSON shape an agent posts back.
// When AnswerFound is false, Answers must be empty.
type AnswerSetPayload struct {
	AnswerFound bool     `json:"answer_found"`
	Answers     []Answer `json:"answers,omitempty"`
}

// Validate checks the variant shape and confidence range.
func (a Answer) Validate() error {
	if a.Confidence < 0 || a.Confidence > 1 {
		return fmt.Errorf("confidence %f out of [0,1]", a.Confidence)
	}
	switch a.Type {
	case TypeText, TypeDate, TypeCurrency:
		if a.Value == "" {
			return fmt.Errorf("%s answer requires a value", a.Type)
		}
	case TypeSelect:
		if a.OptionID == nil {
			return fmt.Errorf("select answer requires option_id")
		}
	default:
		return fmt.Errorf("unknown answer type %q", a.Type)
	}
	return nil
}

// Validate checks the set-level invariant and every answer.
func (p AnswerSetPayload) Validate() error {
	if !p.AnswerFound && len(p.Answers) > 0 {
		return fmt.Errorf("answer_found=false with %d answers", len(p.Answers))
	}
	if p.AnswerFound && len(p.Answers) == 0 {
		return fmt.Errorf("answer_found=true with no answers")
	}
	for i, a := range p.Answers {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("answer %d: %w", i, err)
		}
	}
	return nil
}

// Data returns the answer_data payload persisted on the Answer row. Only
// the fields of the tagged variant appear.
func (a Answer) Data() map[string]interface{} {
	data := map[string]interface{}{}
	switch a.Type {
	case TypeText:
		data["value"] = a.Value
	case TypeDate:
		data["value"] = a.Value
		if a.ParsedDate != "" {
			data["parsed_date"] = a.ParsedDate
		}
	case TypeCurrency:
		data["value"] = a.Value
		if a.Amount != nil {
			data["amount"] = *a.Amount
		}
		if a.Currency != "" {
			data["currency"] = a.Currency
		}
	case TypeSelect:
		if a.OptionID != nil {
			data["option_id"] = *a.OptionID
		}
		data["option_value"] = a.OptionValue
	}
	return data
}
