package qa

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/citation"
	"github.com/docmatrix-ai/docmatrix/ent/matrixcell"
	"github.com/docmatrix-ai/docmatrix/pkg/answers"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/llm"
	"github.com/docmatrix-ai/docmatrix/pkg/matrix"
	"github.com/docmatrix-ai/docmatrix/pkg/messaging"
	"github.com/docmatrix-ai/docmatrix/pkg/quota"
	"github.com/docmatrix-ai/docmatrix/test/util"
)

type fakeQuestions struct {
	question Question
}

func (f fakeQuestions) Question(ctx context.Context, companyID, questionID int) (Question, error) {
	q := f.question
	q.ID = questionID
	return q, nil
}

type fakeCompleter struct {
	responses []string
	calls     int
	lastMsgs  []llm.Message
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	f.lastMsgs = messages
	if f.calls >= len(f.responses) {
		return "", fmt.Errorf("no scripted response for call %d", f.calls)
	}
	resp := f.responses[f.calls]
	f.calls++
	return resp, nil
}

type fakeLauncher struct {
	started int
	last    AgentQARequest
}

func (f *fakeLauncher) StartAgentQA(ctx context.Context, req AgentQARequest) (string, error) {
	f.started++
	f.last = req
	return fmt.Sprintf("agent-qa-%d", req.JobID), nil
}

func mapLoader(contents map[int]string) answers.ContentLoader {
	return func(ctx context.Context, documentID int) (string, error) {
		return contents[documentID], nil
	}
}

const contractContent = "The agreement may be terminated with ninety days written notice by either party. Payment is due monthly."

func setupDispatcher(t *testing.T, question Question, completer *fakeCompleter, launcher *fakeLauncher, contents map[int]string) (*Dispatcher, *ent.Client, *matrix.Engine, int, matrix.JobPayload) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	company := util.CreateTestCompany(t, client, "free")
	doc := util.CreateTestDocument(t, client, company.ID, "contract.md", len(contractContent))
	m := util.CreateTestMatrix(t, client, company.ID)
	engine := matrix.NewEngine(client, messaging.NewMemoryBus(3), nil)
	ctx := context.Background()

	if contents == nil {
		contents = map[int]string{}
	}
	if _, ok := contents[doc.ID]; !ok {
		contents[doc.ID] = contractContent
	}

	cell, _, err := engine.CreateCell(ctx, m.ID, "qa", []matrix.Ref{
		{Role: "document", EntityID: doc.ID},
		{Role: "question", EntityID: 77},
	})
	require.NoError(t, err)

	job, err := client.QAJob.Create().SetCellID(cell.ID).SetCompanyID(company.ID).Save(ctx)
	require.NoError(t, err)

	d := NewDispatcher(client, quota.NewService(client), engine, answers.NewStore(client),
		fakeQuestions{question: question}, completer, launcher, mapLoader(contents),
		150_000, 1)
	return d, client, engine, company.ID, matrix.JobPayload{JobID: job.ID, CellID: cell.ID, CompanyID: company.ID}
}

func localResponse(docID int, quote string) string {
	return fmt.Sprintf("Here is the answer.\n```json\n{\"answer_found\": true, \"answers\": [{\"type\": \"text\", \"value\": \"ninety days\", \"confidence\": 0.9, \"citations\": [{\"document_id\": %d, \"quote_text\": %q, \"citation_order\": 1}]}]}\n```", docID, quote)
}

func TestProcessLocalPath(t *testing.T) {
	question := Question{Text: "What is the notice period?", Type: answers.TypeText, MinAnswers: 1, MaxAnswers: intPtr(1)}
	completer := &fakeCompleter{}
	d, client, engine, companyID, job := setupDispatcher(t, question, completer, &fakeLauncher{}, nil)
	ctx := context.Background()

	cell, err := engine.GetCell(ctx, job.CellID)
	require.NoError(t, err)
	docID := cell.Edges.EntityRefs[0].EntityID
	if cell.Edges.EntityRefs[0].Role != "document" {
		docID = cell.Edges.EntityRefs[1].EntityID
	}
	completer.responses = []string{localResponse(docID, "ninety days written notice")}

	outcome, err := d.Process(ctx, job)
	require.NoError(t, err)
	assert.False(t, outcome.Decision.UseAgent)
	assert.Equal(t, ReasonDefault, outcome.Decision.Reason)
	require.NotZero(t, outcome.AnswerSetID)

	// The cell completed and points at the new set.
	reloaded, err := engine.GetCell(ctx, job.CellID)
	require.NoError(t, err)
	assert.Equal(t, matrixcell.StatusCompleted, reloaded.Status)
	require.NotNil(t, reloaded.CurrentAnswerSetID)
	assert.Equal(t, outcome.AnswerSetID, *reloaded.CurrentAnswerSetID)

	// The exact quote grounded at 1.0.
	cit, err := client.Citation.Query().Where(citation.DocumentID(docID)).Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, cit.GroundingScore)
	assert.Equal(t, 1.0, *cit.GroundingScore)

	// One cell operation reserved.
	usage, err := quota.NewService(client).CurrentUsage(ctx, companyID, config.EventCellOperation)
	require.NoError(t, err)
	assert.Equal(t, 1, usage.CurrentUsage)

	// The conversation carried the document content.
	require.Len(t, completer.lastMsgs, 2)
	assert.Contains(t, completer.lastMsgs[1].Content, "ninety days written notice")
}

func TestProcessLocalRetryOnUngroundedCitations(t *testing.T) {
	question := Question{Text: "What is the notice period?", Type: answers.TypeText, MinAnswers: 1, MaxAnswers: intPtr(1)}
	completer := &fakeCompleter{}
	d, client, engine, _, job := setupDispatcher(t, question, completer, &fakeLauncher{}, nil)
	ctx := context.Background()

	cell, err := engine.GetCell(ctx, job.CellID)
	require.NoError(t, err)
	docID := cell.Edges.EntityRefs[0].EntityID
	if cell.Edges.EntityRefs[0].Role != "document" {
		docID = cell.Edges.EntityRefs[1].EntityID
	}
	completer.responses = []string{
		localResponse(docID, "entirely fabricated quote that matches nothing in the source"),
		localResponse(docID, "ninety days written notice"),
	}

	outcome, err := d.Process(ctx, job)
	require.NoError(t, err)
	require.NotZero(t, outcome.AnswerSetID)
	assert.Equal(t, 2, completer.calls, "ungrounded first pass retries once")

	// The retry conversation included the first answer and the feedback.
	require.Len(t, completer.lastMsgs, 4)
	assert.Equal(t, llm.RoleAssistant, completer.lastMsgs[2].Role)
	assert.Contains(t, completer.lastMsgs[3].Content, "could not be verified")

	// The grounded retry kept full confidence.
	set, err := client.AnswerSet.Get(ctx, outcome.AnswerSetID)
	require.NoError(t, err)
	ans, err := set.QueryAnswers().Only(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, ans.Confidence, 1e-9)
}

func TestProcessNotFoundSentinel(t *testing.T) {
	question := Question{Text: "What is the penalty clause?", Type: answers.TypeText, MinAnswers: 1, MaxAnswers: intPtr(1)}
	completer := &fakeCompleter{responses: []string{"I searched carefully. " + answers.SentinelNotFound}}
	d, client, engine, _, job := setupDispatcher(t, question, completer, &fakeLauncher{}, nil)
	ctx := context.Background()

	outcome, err := d.Process(ctx, job)
	require.NoError(t, err)
	require.NotZero(t, outcome.AnswerSetID)

	set, err := client.AnswerSet.Get(ctx, outcome.AnswerSetID)
	require.NoError(t, err)
	assert.False(t, set.AnswerFound)
	n, err := set.QueryAnswers().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	reloaded, err := engine.GetCell(ctx, job.CellID)
	require.NoError(t, err)
	assert.Equal(t, matrixcell.StatusCompleted, reloaded.Status)
}

func TestProcessAgentPath(t *testing.T) {
	question := Question{Text: "Summarize obligations", Type: answers.TypeText, UseAgentQA: true, MinAnswers: 1, MaxAnswers: intPtr(1)}
	launcher := &fakeLauncher{}
	d, client, engine, companyID, job := setupDispatcher(t, question, &fakeCompleter{}, launcher, nil)
	ctx := context.Background()

	outcome, err := d.Process(ctx, job)
	require.NoError(t, err)
	assert.True(t, outcome.Decision.UseAgent)
	assert.Equal(t, ReasonQuestionFlag, outcome.Decision.Reason)
	assert.Equal(t, fmt.Sprintf("agent-qa-%d", job.JobID), outcome.WorkflowID)
	assert.Zero(t, outcome.AnswerSetID)

	require.Equal(t, 1, launcher.started)
	assert.Equal(t, job.CellID, launcher.last.CellID)
	assert.Contains(t, launcher.last.Prompt, "Summarize obligations")
	assert.Contains(t, launcher.last.Prompt, "chunk_search")

	// Agent QA reserved, cell untouched until the agent posts back.
	usage, err := quota.NewService(client).CurrentUsage(ctx, companyID, config.EventAgenticQA)
	require.NoError(t, err)
	assert.Equal(t, 1, usage.CurrentUsage)

	reloaded, err := engine.GetCell(ctx, job.CellID)
	require.NoError(t, err)
	assert.Equal(t, matrixcell.StatusPending, reloaded.Status)
}

func TestProcessAgentQuotaDenied(t *testing.T) {
	question := Question{Text: "Q", Type: answers.TypeText, UseAgentQA: true, MinAnswers: 1, MaxAnswers: intPtr(1)}
	launcher := &fakeLauncher{}
	d, client, _, companyID, job := setupDispatcher(t, question, &fakeCompleter{}, launcher, nil)
	ctx := context.Background()

	// Exhaust the free tier's agentic QA allowance.
	limit := config.LimitsForTier(config.TierFree).Limit(config.EventAgenticQA)
	check, err := quota.NewService(client).CheckAndReserve(ctx, companyID, nil, config.EventAgenticQA, limit, nil)
	require.NoError(t, err)
	require.True(t, check.Allowed)

	_, err = d.Process(ctx, job)
	var quotaErr *QuotaError
	require.True(t, errors.As(err, &quotaErr))
	assert.False(t, quotaErr.Check.Allowed)
	assert.Equal(t, config.EventAgenticQA, quotaErr.Check.Metric)
	assert.Zero(t, launcher.started, "no workflow starts on a denied reservation")
}
