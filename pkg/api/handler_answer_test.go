package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
	"github.com/docmatrix-ai/docmatrix/pkg/matrix"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

// processingJob creates a processing cell with a processing QA job, the
// state an agent container finds when it calls back.
func processingJob(t *testing.T, f *apiFixture, documentID int) (*ent.MatrixCell, *ent.QAJob) {
	t.Helper()
	ctx := context.Background()

	m := util.CreateTestMatrix(t, f.client, f.company)
	cell, _, err := f.engine.CreateCell(ctx, m.ID, "qa", []matrix.Ref{
		{Role: "document", EntityID: documentID},
		{Role: "question", EntityID: 11},
	})
	require.NoError(t, err)
	require.NoError(t, f.engine.MarkProcessing(ctx, cell.ID))

	job, err := f.client.QAJob.Create().
		SetCellID(cell.ID).
		SetCompanyID(f.company).
		SetStatus(qajob.StatusProcessing).
		Save(ctx)
	require.NoError(t, err)
	return cell, job
}

func answerBody(documentID int) string {
	return fmt.Sprintf(`{
		"answer_found": true,
		"answers": [{
			"type": "text",
			"value": "Ninety days notice is required.",
			"confidence": 1.0,
			"citations": [{
				"document_id": %d,
				"quote_text": "The termination clause requires ninety days notice.",
				"citation_order": 0
			}]
		}]
	}`, documentID)
}

func TestUploadAnswerCompletesCellAndJob(t *testing.T) {
	f := setupServer(t)
	doc := util.CreateTestDocument(t, f.client, f.company, "contract.pdf", len(contractText))
	cell, job := processingJob(t, f, doc.ID)
	key := qaJobKey(t, f, job.ID)

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/qa-jobs/%d/answer", job.ID),
		key, "application/json", strings.NewReader(answerBody(doc.ID)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "average_score")

	done, err := f.client.MatrixCell.Get(context.Background(), cell.ID)
	require.NoError(t, err)
	assert.Equal(t, matrixcell.StatusCompleted, done.Status)

	finished, err := f.client.QAJob.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, qajob.StatusCompleted, finished.Status)
}

func TestUploadAnswerRequiresMatchingJobScope(t *testing.T) {
	f := setupServer(t)
	doc := util.CreateTestDocument(t, f.client, f.company, "contract.pdf", len(contractText))
	_, job := processingJob(t, f, doc.ID)

	// Credential minted for a different job.
	otherKey := qaJobKey(t, f, job.ID+100)
	rec := f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/qa-jobs/%d/answer", job.ID),
		otherKey, "application/json", strings.NewReader(answerBody(doc.ID)))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Execution credentials never answer QA jobs.
	execKey := executionKey(t, f, 1)
	rec = f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/qa-jobs/%d/answer", job.ID),
		execKey, "application/json", strings.NewReader(answerBody(doc.ID)))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUploadAnswerConflictsWhenJobNotProcessing(t *testing.T) {
	f := setupServer(t)
	doc := util.CreateTestDocument(t, f.client, f.company, "contract.pdf", len(contractText))
	_, job := processingJob(t, f, doc.ID)
	key := qaJobKey(t, f, job.ID)

	require.NoError(t, f.client.QAJob.UpdateOneID(job.ID).
		SetStatus(qajob.StatusCompleted).
		Exec(context.Background()))

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/qa-jobs/%d/answer", job.ID),
		key, "application/json", strings.NewReader(answerBody(doc.ID)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUploadAnswerRejectsInvalidPayload(t *testing.T) {
	f := setupServer(t)
	doc := util.CreateTestDocument(t, f.client, f.company, "contract.pdf", len(contractText))
	cell, job := processingJob(t, f, doc.ID)
	key := qaJobKey(t, f, job.ID)

	// answer_found=false with answers violates the set invariant.
	body := `{"answer_found": false, "answers": [{"type": "text", "value": "x", "confidence": 0.5}]}`
	rec := f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/qa-jobs/%d/answer", job.ID),
		key, "application/json", strings.NewReader(body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The caller cannot redirect the answer to another cell; the cell
	// comes from the job row.
	redirect := fmt.Sprintf(`{"matrix_cell_id": %d, "answer_found": false, "answers": []}`, cell.ID+999)
	rec = f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/qa-jobs/%d/answer", job.ID),
		key, "application/json", strings.NewReader(redirect))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	done, err := f.client.MatrixCell.Get(context.Background(), cell.ID)
	require.NoError(t, err)
	assert.Equal(t, matrixcell.StatusCompleted, done.Status)
}
