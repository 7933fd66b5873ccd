// Package word defines the canonical form and validity rules for a single
// dictionary entry, shared by every index (hashset, trie, bktree) so that
// "canonical" means the same thing everywhere.
package word

import (
	"fmt"
	"strings"

	"github.com/kavanhollis/lexarbor/internal/utils"
	"github.com/kavanhollis/lexarbor/pkg/wlerr"
)

// MaxBytes is the maximum length of a canonical word, in bytes.
const MaxBytes = 256

// Canonicalize trims leading/trailing whitespace and lowercases ASCII
// letters A-Z. Bytes at or above 0x80 are left untouched, so non-ASCII
// scripts are preserved verbatim (spec: "café" stays "café", "CAFÉ" does
// not fold).
func Canonicalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	b := []byte(s)
	changed := false
	for i, c := range b {
		if folded := utils.FoldASCIIByte(c); folded != c {
			b[i] = folded
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}

// Validate reports whether a canonical word satisfies the Data Model
// invariants: non-empty, at most MaxBytes long, and free of embedded NUL.
func Validate(canonical string) error {
	if canonical == "" {
		return fmt.Errorf("word: empty: %w", wlerr.ErrInvalid)
	}
	if len(canonical) > MaxBytes {
		return fmt.Errorf("word: exceeds %d bytes: %w", MaxBytes, wlerr.ErrInvalid)
	}
	if strings.IndexByte(canonical, 0) >= 0 {
		return fmt.Errorf("word: contains NUL: %w", wlerr.ErrInvalid)
	}
	return nil
}
