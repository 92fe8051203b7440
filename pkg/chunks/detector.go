// Package chunks turns extracted documents into persisted, indexed chunk
// sets and serves scoped hybrid queries over them.
package chunks

import (
	"strings"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
)

// StructureReport summarizes the markdown heading structure of a
// document. Headers inside fenced code blocks are not counted.
type StructureReport struct {
	TotalHeaders   int
	HeadersByLevel map[int]int
}

// DistinctLevels is how many different heading depths appear.
func (r StructureReport) DistinctLevels() int {
	return len(r.HeadersByLevel)
}

// DetectStructure scans markdown content and counts ATX headers by
// level, ignoring fenced code.
func DetectStructure(content string) StructureReport {
	report := StructureReport{HeadersByLevel: make(map[int]int)}
	inFence := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		level := headerLevel(trimmed)
		if level > 0 {
			report.TotalHeaders++
			report.HeadersByLevel[level]++
		}
	}
	return report
}

// headerLevel returns the ATX heading depth of a line, or 0. Requires a
// space after the marker, per CommonMark.
func headerLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(line) || line[level] != ' ' {
		return 0
	}
	return level
}

// DecideStrategy picks the chunking strategy for a document. A tier
// override wins outright; otherwise documents with real heading
// structure (enough headers across at least two depths) chunk
// hierarchically and unstructured ones go to agent-backed semantic
// chunking, which is billed per document.
func DecideStrategy(content string, tier config.Tier, minHeaders int) config.ChunkingStrategy {
	if override := config.ChunkingOverrideForTier(tier); override != "" {
		return override
	}
	report := DetectStructure(content)
	if report.TotalHeaders >= minHeaders && report.DistinctLevels() >= 2 {
		return config.ChunkingHierarchical
	}
	return config.ChunkingAgentic
}
