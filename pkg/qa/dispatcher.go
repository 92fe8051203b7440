package qa

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/document"
	entmatrix "github.com/docmatrix-ai/docmatrix/ent/matrix"
	"github.com/docmatrix-ai/docmatrix/pkg/answers"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/llm"
	"github.com/docmatrix-ai/docmatrix/pkg/matrix"
	"github.com/docmatrix-ai/docmatrix/pkg/quota"
)

// Completer is the narrow local-LLM boundary the dispatcher needs.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// AgentQARequest starts one sandboxed agent run.
type AgentQARequest struct {
	JobID          int    `json:"job_id"`
	CellID         int    `json:"cell_id"`
	CompanyID      int    `json:"company_id"`
	Prompt         string `json:"prompt"`
	QuestionTypeID *int   `json:"question_type_id,omitempty"`
}

// AgentLauncher starts the durable agent workflow. Implemented by the
// temporal layer; tests use a fake.
type AgentLauncher interface {
	StartAgentQA(ctx context.Context, req AgentQARequest) (workflowID string, err error)
}

// QuestionSource resolves question content by id. Question content lives
// with the caller's workspace, not in this database.
type QuestionSource interface {
	Question(ctx context.Context, companyID, questionID int) (Question, error)
}

// QuotaError reports a denied reservation; the check carries the payload
// surfaced to the caller.
type QuotaError struct {
	Check *quota.QuotaCheck
}

func (e *QuotaError) Error() string {
	return e.Check.Message()
}

// Outcome reports how a job was dispatched.
type Outcome struct {
	Decision RoutingDecision
	// WorkflowID is set on the agent path; the answer arrives later via
	// the callback API.
	WorkflowID string
	// AnswerSetID is set on the local path once the answers are attached.
	AnswerSetID int
}

// Dispatcher routes and executes QA jobs.
type Dispatcher struct {
	client    *ent.Client
	quotas    *quota.Service
	engine    *matrix.Engine
	store     *answers.Store
	questions QuestionSource
	completer Completer
	launcher  AgentLauncher
	validator *answers.Validator
	loader    answers.ContentLoader

	charThreshold int
	maxRetries    int
}

// NewDispatcher wires a dispatcher. maxRetries bounds grounding retries
// on the local path.
func NewDispatcher(client *ent.Client, quotas *quota.Service, engine *matrix.Engine, store *answers.Store,
	questions QuestionSource, completer Completer, launcher AgentLauncher, loader answers.ContentLoader,
	charThreshold, maxRetries int) *Dispatcher {
	return &Dispatcher{
		client:        client,
		quotas:        quotas,
		engine:        engine,
		store:         store,
		questions:     questions,
		completer:     completer,
		launcher:      launcher,
		validator:     answers.NewValidator(loader),
		loader:        loader,
		charThreshold: charThreshold,
		maxRetries:    maxRetries,
	}
}

// Process resolves the cell's coordinate, routes the question, and runs
// the chosen path. On the agent path the outcome carries the workflow id
// and the answer arrives asynchronously; on the local path the answer set
// is persisted and attached before returning.
func (d *Dispatcher) Process(ctx context.Context, job matrix.JobPayload) (*Outcome, error) {
	cell, err := d.engine.GetCell(ctx, job.CellID)
	if err != nil {
		return nil, err
	}

	var docIDs []int
	questionID := 0
	for _, ref := range cell.Edges.EntityRefs {
		switch ref.Role {
		case "document":
			docIDs = append(docIDs, ref.EntityID)
		case "question":
			questionID = ref.EntityID
		}
	}
	if questionID == 0 {
		return nil, fmt.Errorf("cell %d has no question ref", cell.ID)
	}

	question, err := d.questions.Question(ctx, cell.CompanyID, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve question %d: %w", questionID, err)
	}

	docs, err := d.client.Document.Query().
		Where(
			document.IDIn(docIDs...),
			document.CompanyID(cell.CompanyID),
			document.DeletedAtIsNil(),
		).
		Order(document.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("cell %d has no live documents", cell.ID)
	}

	decision := Route(question, docs, d.charThreshold)
	slog.Info("Routed QA job",
		"job_id", job.JobID,
		"cell_id", cell.ID,
		"use_agent", decision.UseAgent,
		"reason", decision.Reason)

	if decision.UseAgent {
		return d.dispatchAgent(ctx, job, cell, question, docs, decision)
	}
	return d.dispatchLocal(ctx, job, cell, question, docs, decision)
}

func (d *Dispatcher) dispatchAgent(ctx context.Context, job matrix.JobPayload, cell *ent.MatrixCell, question Question, docs []*ent.Document, decision RoutingDecision) (*Outcome, error) {
	check, err := d.quotas.CheckAndReserve(ctx, cell.CompanyID, nil, config.EventAgenticQA, 1, nil)
	if err != nil {
		return nil, err
	}
	if !check.Allowed {
		return nil, &QuotaError{Check: check}
	}

	prompt := ComposeAgentPrompt(PromptInput{
		Question: question,
		Docs:     docs,
		Style:    d.analysisStyle(ctx, cell.MatrixID),
	})

	workflowID, err := d.launcher.StartAgentQA(ctx, AgentQARequest{
		JobID:          job.JobID,
		CellID:         cell.ID,
		CompanyID:      cell.CompanyID,
		Prompt:         prompt,
		QuestionTypeID: question.QuestionTypeID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start agent workflow: %w", err)
	}
	return &Outcome{Decision: decision, WorkflowID: workflowID}, nil
}

func (d *Dispatcher) dispatchLocal(ctx context.Context, job matrix.JobPayload, cell *ent.MatrixCell, question Question, docs []*ent.Document, decision RoutingDecision) (*Outcome, error) {
	check, err := d.quotas.CheckAndReserve(ctx, cell.CompanyID, nil, config.EventCellOperation, 1, nil)
	if err != nil {
		return nil, err
	}
	if !check.Allowed {
		return nil, &QuotaError{Check: check}
	}

	messages, err := d.localConversation(ctx, question, docs)
	if err != nil {
		return nil, err
	}

	var payload *answers.AnswerSetPayload
	var validation *answers.SetValidation
	for attempt := 0; ; attempt++ {
		response, err := d.completer.Complete(ctx, messages)
		if err != nil {
			return nil, fmt.Errorf("completion failed: %w", err)
		}

		extracted, err := answers.ExtractJSON(response)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", job.JobID, err)
		}
		payload, err = answers.ParsePayload(extracted)
		if err != nil {
			return nil, fmt.Errorf("job %d: invalid payload: %w", job.JobID, err)
		}

		validation = d.validator.ValidateSet(ctx, payload)
		if !validation.NeedsRetry || attempt >= d.maxRetries {
			break
		}

		// Retry keeps the conversation: the model sees its own answer
		// and the grounding feedback.
		slog.Info("Retrying with grounding feedback",
			"job_id", job.JobID,
			"average_score", validation.AverageScore)
		messages = append(messages,
			llm.Message{Role: llm.RoleAssistant, Content: response},
			llm.Message{Role: llm.RoleUser, Content: validation.Feedback},
		)
	}

	answers.ApplyConfidencePenalty(payload, validation.AverageScore)

	set, err := d.store.SaveSet(ctx, cell.ID, question.QuestionTypeID, payload, validation)
	if err != nil {
		return nil, err
	}
	if err := d.engine.AttachAnswerSet(ctx, cell.ID, set.ID); err != nil {
		return nil, err
	}
	return &Outcome{Decision: decision, AnswerSetID: set.ID}, nil
}

// localConversation builds the local-path conversation: the instruction
// sections as system, the task context plus full document contents as
// the user turn. The local path reads documents directly, no chunk tools.
func (d *Dispatcher) localConversation(ctx context.Context, question Question, docs []*ent.Document) ([]llm.Message, error) {
	system := strings.Join([]string{
		analysisSection(StyleStandard),
		outputFormatSection(question.Type),
	}, "\n\n")

	var user strings.Builder
	user.WriteString(taskContextSection(PromptInput{Question: question, Docs: docs}))
	user.WriteString("\n\nDocument contents:\n")
	for _, doc := range docs {
		content, err := d.loader(ctx, doc.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load document %d: %w", doc.ID, err)
		}
		fmt.Fprintf(&user, "\n--- document %d: %s ---\n%s\n", doc.ID, doc.Filename, content)
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user.String()},
	}, nil
}

// analysisStyle picks correlation for correlation matrices. Lookup
// failures fall back to standard.
func (d *Dispatcher) analysisStyle(ctx context.Context, matrixID int) AnalysisStyle {
	m, err := d.client.Matrix.Query().
		Where(entmatrix.ID(matrixID)).
		Only(ctx)
	if err != nil {
		return StyleStandard
	}
	switch m.MatrixType {
	case entmatrix.MatrixTypeCrossCorrelation, entmatrix.MatrixTypeGenericCorrelation:
		return StyleCorrelation
	default:
		return StyleStandard
	}
}
