package chunks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
)

// Metadata describes one chunk's position in its source document.
type Metadata struct {
	Section   string `json:"section,omitempty"`
	Level     int    `json:"level,omitempty"`
	StartChar int    `json:"start_char"`
	EndChar   int    `json:"end_char"`
}

// Chunk is one emitted segment before persistence.
type Chunk struct {
	// ChunkID is the stable id within the set, chunk_001 onward.
	ChunkID  string
	Content  string
	Metadata Metadata
}

// Chunker splits extracted content into ordered chunks.
type Chunker interface {
	Split(content string) []Chunk
}

// Splitting defaults shared by the non-hierarchical chunkers.
const (
	defaultChunkSize = 2000
	defaultOverlap   = 200
)

// ChunkerFor maps a strategy to its splitter. Semantic and agentic both
// use the paragraph-grouping splitter as the local stand-in for the
// agent-run chunker; agentic runs are billed by the ingester before the
// split happens.
func ChunkerFor(strategy config.ChunkingStrategy) (Chunker, error) {
	switch strategy {
	case config.ChunkingHierarchical:
		return &HierarchicalChunker{MaxSectionSize: 2 * defaultChunkSize}, nil
	case config.ChunkingFixedSize:
		return &FixedSizeChunker{Size: defaultChunkSize, Overlap: defaultOverlap}, nil
	case config.ChunkingSentence:
		return &SentenceChunker{TargetSize: defaultChunkSize}, nil
	case config.ChunkingParagraph, config.ChunkingSemantic, config.ChunkingAgentic:
		return &ParagraphChunker{TargetSize: defaultChunkSize}, nil
	default:
		return nil, fmt.Errorf("unknown chunking strategy %q", strategy)
	}
}

func chunkID(n int) string {
	return fmt.Sprintf("chunk_%03d", n)
}

// HierarchicalChunker splits on markdown headers, one chunk per section.
// Sections larger than MaxSectionSize are further split by paragraphs.
type HierarchicalChunker struct {
	MaxSectionSize int
}

type section struct {
	title string
	level int
	start int
	body  strings.Builder
}

func (c *HierarchicalChunker) Split(content string) []Chunk {
	var sections []*section
	current := &section{title: "", level: 0}
	inFence := false
	offset := 0

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
		}
		if level := headerLevel(trimmed); !inFence && level > 0 {
			if strings.TrimSpace(current.body.String()) != "" || current.title != "" {
				sections = append(sections, current)
			}
			current = &section{
				title: strings.TrimSpace(strings.TrimLeft(trimmed, "#")),
				level: level,
				start: offset,
			}
		}
		current.body.WriteString(line)
		current.body.WriteString("\n")
		offset += len(line) + 1
	}
	if strings.TrimSpace(current.body.String()) != "" {
		sections = append(sections, current)
	}

	var chunks []Chunk
	for _, sec := range sections {
		body := strings.TrimRight(sec.body.String(), "\n")
		if c.MaxSectionSize > 0 && len(body) > c.MaxSectionSize {
			for _, part := range groupParagraphs(body, c.MaxSectionSize) {
				chunks = appendChunk(chunks, part, sec.title, sec.level, sec.start)
			}
			continue
		}
		chunks = appendChunk(chunks, body, sec.title, sec.level, sec.start)
	}
	return chunks
}

func appendChunk(chunks []Chunk, body, title string, level, start int) []Chunk {
	n := len(chunks) + 1
	return append(chunks, Chunk{
		ChunkID: chunkID(n),
		Content: body,
		Metadata: Metadata{
			Section:   title,
			Level:     level,
			StartChar: start,
			EndChar:   start + len(body),
		},
	})
}

// FixedSizeChunker emits fixed windows with overlap.
type FixedSizeChunker struct {
	Size    int
	Overlap int
}

func (c *FixedSizeChunker) Split(content string) []Chunk {
	if content == "" {
		return nil
	}
	step := c.Size - c.Overlap
	if step < 1 {
		step = c.Size
	}

	var chunks []Chunk
	for start := 0; start < len(content); start += step {
		end := start + c.Size
		if end > len(content) {
			end = len(content)
		}
		chunks = append(chunks, Chunk{
			ChunkID: chunkID(len(chunks) + 1),
			Content: content[start:end],
			Metadata: Metadata{
				StartChar: start,
				EndChar:   end,
			},
		})
		if end == len(content) {
			break
		}
	}
	return chunks
}

var sentenceEnd = regexp.MustCompile(`([.!?])\s+`)

// SentenceChunker groups whole sentences up to TargetSize.
type SentenceChunker struct {
	TargetSize int
}

func (c *SentenceChunker) Split(content string) []Chunk {
	marked := sentenceEnd.ReplaceAllString(content, "$1\x00")
	sentences := strings.Split(marked, "\x00")
	return groupUnits(sentences, " ", c.TargetSize)
}

// ParagraphChunker groups whole paragraphs (blank-line separated) up to
// TargetSize.
type ParagraphChunker struct {
	TargetSize int
}

func (c *ParagraphChunker) Split(content string) []Chunk {
	return groupUnits(splitParagraphs(content), "\n\n", c.TargetSize)
}

func splitParagraphs(content string) []string {
	var paragraphs []string
	for _, p := range regexp.MustCompile(`\n\s*\n`).Split(content, -1) {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, strings.TrimSpace(p))
		}
	}
	return paragraphs
}

// groupParagraphs is the plain-string variant used to split oversized
// hierarchical sections.
func groupParagraphs(content string, targetSize int) []string {
	var parts []string
	for _, c := range groupUnits(splitParagraphs(content), "\n\n", targetSize) {
		parts = append(parts, c.Content)
	}
	return parts
}

// groupUnits accumulates units into chunks no larger than targetSize;
// a single oversized unit becomes its own chunk.
func groupUnits(units []string, sep string, targetSize int) []Chunk {
	var chunks []Chunk
	var buf strings.Builder
	start := 0
	offset := 0

	flush := func() {
		body := strings.TrimSpace(buf.String())
		if body == "" {
			return
		}
		chunks = append(chunks, Chunk{
			ChunkID: chunkID(len(chunks) + 1),
			Content: body,
			Metadata: Metadata{
				StartChar: start,
				EndChar:   start + len(body),
			},
		})
		buf.Reset()
	}

	for _, unit := range units {
		unit = strings.TrimSpace(unit)
		if unit == "" {
			continue
		}
		if buf.Len() > 0 && buf.Len()+len(sep)+len(unit) > targetSize {
			flush()
			start = offset
		}
		if buf.Len() > 0 {
			buf.WriteString(sep)
		}
		buf.WriteString(unit)
		offset += len(unit) + len(sep)
	}
	flush()
	return chunks
}
