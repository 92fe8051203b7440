package credentials

import (
	"fmt"
	"strconv"
	"strings"
)

// Execution ID formats. The broker itself treats execution IDs as opaque
// strings; these helpers keep the two producers and the callback API in
// agreement.
const (
	qaJobScopePrefix     = "qa-job-"
	executionScopePrefix = "execution-"
)

// QAJobScope is the execution ID of a credential minted for an agent QA
// job.
func QAJobScope(jobID int) string {
	return fmt.Sprintf("%s%d", qaJobScopePrefix, jobID)
}

// ExecutionScope is the execution ID of a credential minted for a
// workflow execution container.
func ExecutionScope(executionID int) string {
	return fmt.Sprintf("%s%d", executionScopePrefix, executionID)
}

// QAJobID reports the QA job this principal was minted for, if any.
func (u *AuthenticatedUser) QAJobID() (int, bool) {
	return parseScope(u.ExecutionID, qaJobScopePrefix)
}

// WorkflowExecutionID reports the workflow execution this principal was
// minted for, if any.
func (u *AuthenticatedUser) WorkflowExecutionID() (int, bool) {
	return parseScope(u.ExecutionID, executionScopePrefix)
}

func parseScope(executionID, prefix string) (int, bool) {
	if !strings.HasPrefix(executionID, prefix) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(executionID, prefix))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
