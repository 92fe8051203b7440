package api

import (
	"encoding/json"
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/docmatrix-ai/docmatrix/pkg/credentials"
	"github.com/docmatrix-ai/docmatrix/pkg/tools"
)

// invocationFor derives the tool invocation scope from the principal's
// credential. Agent QA keys carry their job ID so write tools can close
// out the job; workflow keys get the read-only workflow context.
func invocationFor(user *credentials.AuthenticatedUser) (tools.Invocation, bool) {
	if jobID, ok := user.QAJobID(); ok {
		return tools.Invocation{
			CompanyID: user.CompanyID,
			Context:   tools.ContextAgentQA,
			QAJobID:   jobID,
		}, true
	}
	if _, ok := user.WorkflowExecutionID(); ok {
		return tools.Invocation{
			CompanyID: user.CompanyID,
			Context:   tools.ContextWorkflow,
		}, true
	}
	return tools.Invocation{}, false
}

// listToolsHandler handles GET /api/v1/tools. Returns the tools visible
// in the caller's context.
func (s *Server) listToolsHandler(c *echo.Context) error {
	user, ok := principalFrom(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	inv, ok := invocationFor(user)
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, "credential has no tool context")
	}

	var descriptors []ToolDescriptor
	for _, tool := range s.registry.ForContext(inv.Context) {
		descriptors = append(descriptors, ToolDescriptor{
			Name:        tool.Name,
			Description: tool.Description,
			Permission:  string(tool.Permission),
		})
	}

	return c.JSON(http.StatusOK, &ToolListResponse{
		Context: string(inv.Context),
		Tools:   descriptors,
	})
}

// invokeToolHandler handles POST /api/v1/tools/:name. The request body
// is the tool input; validation happens in the registry.
func (s *Server) invokeToolHandler(c *echo.Context) error {
	user, ok := principalFrom(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	inv, ok := invocationFor(user)
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, "credential has no tool context")
	}

	name := c.Param("name")
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}

	result, err := s.registry.Execute(c.Request().Context(), inv, name, json.RawMessage(body))
	if err != nil {
		return mapToolError(err)
	}
	return c.JSON(http.StatusOK, result)
}
