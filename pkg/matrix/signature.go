// Package matrix realizes the N-dimensional product of a matrix's entity
// sets as deduplicated, lifecycle-managed cells.
package matrix

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Ref is one (role, entity id) pair of a cell's coordinate. The role names
// the axis, e.g. "document" or "question".
type Ref struct {
	Role     string `json:"role"`
	EntityID int    `json:"entity_id"`
}

// Signature computes the canonical cell signature for a coordinate: the
// sha-256 hex of the refs encoded as "role:entity_id", sorted by role then
// entity id, joined with "|". The same coordinate always hashes to the
// same signature regardless of input order.
func Signature(refs []Ref) string {
	sorted := make([]Ref, len(refs))
	copy(sorted, refs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Role != sorted[j].Role {
			return sorted[i].Role < sorted[j].Role
		}
		return sorted[i].EntityID < sorted[j].EntityID
	})

	parts := make([]string, len(sorted))
	for i, ref := range sorted {
		parts[i] = fmt.Sprintf("%s:%d", ref.Role, ref.EntityID)
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
