package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docmatrix-ai/docmatrix/ent"
)

func docWithChars(n int) *ent.Document {
	return &ent.Document{ExtractedCharCount: n}
}

func TestRouteQuestionFlag(t *testing.T) {
	d := Route(Question{UseAgentQA: true}, []*ent.Document{docWithChars(10)}, 1000)
	assert.True(t, d.UseAgent)
	assert.Equal(t, ReasonQuestionFlag, d.Reason)
	assert.False(t, d.IsAutoRouted)
}

func TestRouteDocumentSize(t *testing.T) {
	docs := []*ent.Document{docWithChars(600), docWithChars(500)}
	d := Route(Question{}, docs, 1000)
	assert.True(t, d.UseAgent)
	assert.Equal(t, ReasonDocumentSize, d.Reason)
	assert.True(t, d.IsAutoRouted)
}

func TestRouteBoundaryStaysLocal(t *testing.T) {
	// Exactly at the threshold is local.
	d := Route(Question{}, []*ent.Document{docWithChars(1000)}, 1000)
	assert.False(t, d.UseAgent)
	assert.Equal(t, ReasonDefault, d.Reason)

	d = Route(Question{}, []*ent.Document{docWithChars(1001)}, 1000)
	assert.True(t, d.UseAgent)
}

func TestRouteZeroCharsLocal(t *testing.T) {
	d := Route(Question{}, nil, 1000)
	assert.False(t, d.UseAgent)
	assert.Equal(t, ReasonDefault, d.Reason)
}

func TestRouteFlagBeatsSize(t *testing.T) {
	// The explicit flag wins over the size reason.
	d := Route(Question{UseAgentQA: true}, []*ent.Document{docWithChars(5000)}, 1000)
	assert.Equal(t, ReasonQuestionFlag, d.Reason)
	assert.False(t, d.IsAutoRouted)
}
