package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/qa"
	"github.com/docmatrix-ai/docmatrix/pkg/quota"
	"github.com/docmatrix-ai/docmatrix/pkg/services"
	"github.com/docmatrix-ai/docmatrix/pkg/tools"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "validation", err: services.NewValidationError("name", "is required"), code: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("document 7: %w", services.ErrNotFound), code: http.StatusNotFound},
		{name: "already exists", err: services.ErrAlreadyExists, code: http.StatusConflict},
		{name: "invalid state", err: fmt.Errorf("extraction already claimed: %w", services.ErrInvalidState), code: http.StatusConflict},
		{name: "unexpected", err: errors.New("boom"), code: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, mapServiceError(tt.err).Code)
		})
	}
}

func TestMapQuotaDenial(t *testing.T) {
	check := &quota.QuotaCheck{
		Allowed:      false,
		Metric:       config.EventAgenticQA,
		CurrentUsage: 5,
		Limit:        5,
		PeriodEnd:    time.Now().Add(24 * time.Hour),
	}
	httpErr := mapServiceError(&qa.QuotaError{Check: check})
	assert.Equal(t, http.StatusPaymentRequired, httpErr.Code)

	payload, ok := httpErr.Message.(*QuotaDeniedResponse)
	require.True(t, ok)
	assert.Contains(t, payload.Error, "limit reached")
	assert.Equal(t, 5, payload.Quota.CurrentUsage)
}

func TestMapToolError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, mapToolError(fmt.Errorf("%w: x", tools.ErrUnknownTool)).Code)
	assert.Equal(t, http.StatusForbidden, mapToolError(tools.ErrContextDenied).Code)
	assert.Equal(t, http.StatusForbidden, mapToolError(tools.ErrToolNotAllowed).Code)
	assert.Equal(t, http.StatusBadRequest, mapToolError(fmt.Errorf("%w: bad schema", tools.ErrInvalidInput)).Code)
	assert.Equal(t, http.StatusInternalServerError, mapToolError(errors.New("boom")).Code)
}
