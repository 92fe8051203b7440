package chunks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
)

const structuredDoc = `# Title

Intro paragraph.

## Section One

Body one.

## Section Two

Body two.

### Detail

Deep body.
`

const flatDoc = `Just a wall of prose without any markdown structure.
More prose. And more prose still.`

func TestDetectStructure(t *testing.T) {
	report := DetectStructure(structuredDoc)
	assert.Equal(t, 4, report.TotalHeaders)
	assert.Equal(t, 3, report.DistinctLevels())
	assert.Equal(t, 1, report.HeadersByLevel[1])
	assert.Equal(t, 2, report.HeadersByLevel[2])
	assert.Equal(t, 1, report.HeadersByLevel[3])
}

func TestDetectStructureIgnoresFencedCode(t *testing.T) {
	doc := "# Real Header\n\n```\n# not a header\n## also not\n```\n\n## Another Real One\n"
	report := DetectStructure(doc)
	assert.Equal(t, 2, report.TotalHeaders)
	assert.Equal(t, 2, report.DistinctLevels())
}

func TestDetectStructureRequiresSpace(t *testing.T) {
	// "#hashtag" is not an ATX heading.
	report := DetectStructure("#hashtag\n#### Heading\n")
	assert.Equal(t, 1, report.TotalHeaders)
}

func TestDecideStrategy(t *testing.T) {
	// Structured document on a tier without override: hierarchical.
	assert.Equal(t, config.ChunkingHierarchical, DecideStrategy(structuredDoc, config.TierProfessional, 3))

	// Flat document: agent-backed semantic chunking.
	assert.Equal(t, config.ChunkingAgentic, DecideStrategy(flatDoc, config.TierProfessional, 3))

	// Enough headers but a single level: agentic.
	oneLevel := "## A\n\ntext\n\n## B\n\ntext\n\n## C\n\ntext\n"
	assert.Equal(t, config.ChunkingAgentic, DecideStrategy(oneLevel, config.TierProfessional, 3))

	// Below the header minimum: agentic.
	assert.Equal(t, config.ChunkingAgentic, DecideStrategy("# A\n\n## B\n", config.TierProfessional, 3))
}

func TestDecideStrategyTierOverrides(t *testing.T) {
	// Overrides win even for well-structured documents.
	assert.Equal(t, config.ChunkingFixedSize, DecideStrategy(structuredDoc, config.TierFree, 3))
	assert.Equal(t, config.ChunkingParagraph, DecideStrategy(structuredDoc, config.TierStarter, 3))
}
