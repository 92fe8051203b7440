package answers

import (
	"context"
	"fmt"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/answer"
)

// Store persists answer sets.
type Store struct {
	client *ent.Client
}

// NewStore creates an answer store.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// SaveSet persists the payload as a new AnswerSet for the cell in one
// transaction. validation, when given, must come from ValidateSet on the
// same payload; its results are matched to citations positionally.
// Attachment to the cell is the caller's step.
func (s *Store) SaveSet(ctx context.Context, cellID int, questionTypeID *int, payload *AnswerSetPayload, validation *SetValidation) (*ent.AnswerSet, error) {
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("invalid answer set: %w", err)
	}

	var scores []GroundingResult
	if validation != nil {
		scores = validation.Results
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	set, err := tx.AnswerSet.Create().
		SetCellID(cellID).
		SetAnswerFound(payload.AnswerFound).
		SetNillableQuestionTypeID(questionTypeID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create answer set: %w", err)
	}

	scoreIdx := 0
	for order, a := range payload.Answers {
		row, err := tx.Answer.Create().
			SetAnswerSetID(set.ID).
			SetAnswerOrder(order).
			SetAnswerType(answer.AnswerType(a.Type)).
			SetAnswerData(a.Data()).
			SetConfidence(a.Confidence).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create answer %d: %w", order, err)
		}

		for _, c := range a.Citations {
			create := tx.Citation.Create().
				SetAnswerID(row.ID).
				SetDocumentID(c.DocumentID).
				SetQuoteText(c.QuoteText).
				SetCitationOrder(c.CitationOrder)
			// ValidateSet walks answers then citations in this same order.
			if scoreIdx < len(scores) {
				create = create.SetGroundingScore(scores[scoreIdx].Score)
				scoreIdx++
			}
			if err := create.Exec(ctx); err != nil {
				return nil, fmt.Errorf("failed to create citation %d: %w", c.CitationOrder, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit answer set: %w", err)
	}
	return set, nil
}
