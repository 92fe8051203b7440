package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/docmatrix-ai/docmatrix/ent"
	"github.com/docmatrix-ai/docmatrix/ent/qajob"
	"github.com/docmatrix-ai/docmatrix/pkg/tools"
)

// uploadAnswerHandler handles POST /api/v1/qa-jobs/:id/answer. The body
// is the agent's answer-set payload; the target cell comes from the job
// row, never from the caller. A credential may only answer its own job.
func (s *Server) uploadAnswerHandler(c *echo.Context) error {
	user, ok := principalFrom(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	jobID, err := strconv.Atoi(c.Param("id"))
	if err != nil || jobID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid qa job id")
	}
	scopedJobID, ok := user.QAJobID()
	if !ok || scopedJobID != jobID {
		return echo.NewHTTPError(http.StatusForbidden, "credential is not scoped to this job")
	}

	job, err := s.client.QAJob.Query().
		Where(qajob.ID(jobID), qajob.CompanyID(user.CompanyID)).
		Only(c.Request().Context())
	if err != nil {
		if ent.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "qa job not found")
		}
		return mapServiceError(err)
	}
	if job.Status != qajob.StatusProcessing {
		return echo.NewHTTPError(http.StatusConflict, "qa job is not processing")
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be a JSON object")
	}
	payload["matrix_cell_id"] = job.CellID

	input, err := json.Marshal(payload)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to encode payload")
	}

	inv := tools.Invocation{
		CompanyID: user.CompanyID,
		Context:   tools.ContextAgentQA,
		QAJobID:   jobID,
	}
	result, err := s.registry.Execute(c.Request().Context(), inv, "answer_upload", input)
	if err != nil {
		return mapToolError(err)
	}
	return c.JSON(http.StatusOK, result)
}
