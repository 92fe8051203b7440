// Package tools is the static registry of platform tools exposed to
// sandboxed agents through the callback API. Tools are sealed values
// registered at construction; callers filter by context and permission
// with pure functions, and every input is validated against the tool's
// JSON schema before its handler runs.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/pkg/answers"
	"github.com/docmatrix-ai/docmatrix/pkg/chunks"
	"github.com/docmatrix-ai/docmatrix/pkg/matrix"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
)

// Context is the execution surface a tool may be called from.
type Context string

// Tool contexts.
const (
	ContextAgentQA  Context = "agent_qa"
	ContextWorkflow Context = "workflow"
)

// Permission classifies what a tool does to platform state.
type Permission string

// Tool permissions.
const (
	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"
)

// Registry errors.
var (
	ErrUnknownTool    = errors.New("unknown tool")
	ErrContextDenied  = errors.New("tool not allowed in this context")
	ErrInvalidInput   = errors.New("tool input failed schema validation")
	ErrToolNotAllowed = errors.New("tool permission denied")
)

// Invocation identifies the caller of a tool. CompanyID scopes every
// data access; handlers never widen it.
type Invocation struct {
	CompanyID int
	Context   Context
	// QAJobID is set when the caller is an agent QA job.
	QAJobID int
}

// Handler runs one validated tool call. input is the raw JSON the
// schema already accepted.
type Handler func(ctx context.Context, inv Invocation, input json.RawMessage) (interface{}, error)

// Tool is one sealed registry entry.
type Tool struct {
	Name            string
	Description     string
	AllowedContexts []Context
	Permission      Permission

	schema  *jsonschema.Schema
	handler Handler
}

// AllowedIn reports whether the tool may run in the given context.
func (t *Tool) AllowedIn(c Context) bool {
	for _, allowed := range t.AllowedContexts {
		if allowed == c {
			return true
		}
	}
	return false
}

// Deps are the platform capabilities handlers close over.
type Deps struct {
	Client    *ent.Client
	Store     storage.ObjectStore
	Searcher  *chunks.HybridSearcher
	Answers   *answers.Store
	Engine    *matrix.Engine
	Validator *answers.Validator
}

// Registry holds the sealed tool set.
type Registry struct {
	deps  Deps
	tools map[string]*Tool
}

// NewRegistry builds the registry. The tool set is fixed here; nothing
// registers tools at runtime.
func NewRegistry(deps Deps) *Registry {
	r := &Registry{deps: deps, tools: make(map[string]*Tool)}
	for _, t := range []*Tool{
		chunkSearchTool(deps),
		chunkGetTool(deps),
		documentListTool(deps),
		matrixCellGetTool(deps),
		answerUploadTool(deps),
	} {
		r.tools[t.Name] = t
	}
	return r
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (*Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// ForContext returns the tools usable in a context, optionally narrowed
// to one permission, sorted by name. Pure function of the registry.
func (r *Registry) ForContext(c Context, perms ...Permission) []*Tool {
	var out []*Tool
	for _, t := range r.tools {
		if !t.AllowedIn(c) {
			continue
		}
		if len(perms) > 0 {
			allowed := false
			for _, p := range perms {
				if t.Permission == p {
					allowed = true
					break
				}
			}
			if !allowed {
				continue
			}
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Execute validates the call against context and schema, then runs the
// handler under the invocation's company scope.
func (r *Registry) Execute(ctx context.Context, inv Invocation, name string, input json.RawMessage) (interface{}, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if !tool.AllowedIn(inv.Context) {
		return nil, fmt.Errorf("%w: %s in %s", ErrContextDenied, name, inv.Context)
	}
	if inv.CompanyID == 0 {
		return nil, fmt.Errorf("%w: missing company scope", ErrToolNotAllowed)
	}

	if len(input) == 0 {
		input = json.RawMessage("{}")
	}
	var decoded interface{}
	if err := json.Unmarshal(input, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := tool.schema.Validate(decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return tool.handler(ctx, inv, input)
}

func mustSchema(name, schema string) *jsonschema.Schema {
	return jsonschema.MustCompileString(name+".json", schema)
}
