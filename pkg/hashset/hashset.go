/*
Package hashset implements the engine's exact-membership index: an
open-addressed hash table with linear probing and tombstones over FNV-1a
hashes of canonical word bytes.

The table keeps its own canonical string for every word (see pkg/word).
pkg/trie stores words only as byte paths through its nodes; pkg/bktree
holds the canonical strings pkg/wordlib passes it, which are the strings
Iter yields whenever the facade rebuilds the tree.

Growth doubles capacity (always a power of two) once (live+tombstone)/cap
crosses 0.75, rehashing every live slot into the fresh table and dropping
tombstones. Lookup stops at the first empty slot and never at a tombstone,
so removed words don't break probe chains for words inserted after them.

Time Complexity:
  - Add / Remove / Contains: O(1) expected, O(n) worst case under heavy
    clustering.
  - Count: O(1).
  - Iter: O(capacity).
*/
package hashset

import (
	"fmt"
	"hash/fnv"

	charmlog "github.com/charmbracelet/log"

	"github.com/kavanhollis/lexarbor/internal/logger"
	"github.com/kavanhollis/lexarbor/pkg/wlerr"
	"github.com/kavanhollis/lexarbor/pkg/word"
)

const (
	initialCapacity = 64
	maxLoadFactor   = 0.75
	// maxCapacity bounds growth so a pathological insert sequence fails
	// with ErrOutOfMemory instead of growing without limit; Go gives no
	// recoverable signal for allocation failure, so this ceiling is the
	// idiomatic stand-in spec.md §4.1 calls for.
	maxCapacity = 1 << 28
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotLive
	slotTombstone
)

type slot struct {
	hash  uint32
	word  string
	state slotState
}

// Set is an open-addressed hash set of canonical words.
type Set struct {
	slots      []slot
	live       int
	tombstones int
	log        *charmlog.Logger
}

// Option configures a Set at construction time.
type Option func(*Set)

// WithLogger injects the logger Set uses for growth diagnostics. Callers
// that don't need growth visibility can leave this unset; the default
// logger is silent unless the adapter raises the global log level.
func WithLogger(l *charmlog.Logger) Option {
	return func(s *Set) { s.log = l }
}

// New creates an empty Set with the suggested initial capacity (64).
func New(opts ...Option) *Set {
	s := &Set{slots: make([]slot, initialCapacity), log: logger.New("hashset")}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Count returns the number of live words in the set.
func (s *Set) Count() int { return s.live }

func fnv1a(data string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(data))
	return h.Sum32()
}

func (s *Set) mask() uint32 { return uint32(len(s.slots) - 1) }

// find returns the slot index containing canonical, or the index of the
// first empty/tombstone slot encountered (for insertion), and whether
// canonical was found live.
func (s *Set) find(canonical string, h uint32) (idx int, found bool) {
	mask := s.mask()
	i := h & mask
	firstTombstone := -1
	for {
		sl := &s.slots[i]
		switch sl.state {
		case slotEmpty:
			if firstTombstone >= 0 {
				return firstTombstone, false
			}
			return int(i), false
		case slotTombstone:
			if firstTombstone < 0 {
				firstTombstone = int(i)
			}
		case slotLive:
			if sl.hash == h && sl.word == canonical {
				return int(i), true
			}
		}
		i = (i + 1) & mask
	}
}

// Add canonicalizes word, validates it, and inserts it if absent.
func (s *Set) Add(raw string) (wlerr.Outcome, error) {
	canonical := word.Canonicalize(raw)
	if err := word.Validate(canonical); err != nil {
		return wlerr.OutcomeNone, err
	}

	if float64(s.live+s.tombstones+1)/float64(len(s.slots)) > maxLoadFactor {
		if err := s.grow(); err != nil {
			return wlerr.OutcomeNone, err
		}
	}

	h := fnv1a(canonical)
	idx, found := s.find(canonical, h)
	if found {
		return wlerr.OutcomeAlreadyPresent, nil
	}

	wasTombstone := s.slots[idx].state == slotTombstone
	s.slots[idx] = slot{hash: h, word: canonical, state: slotLive}
	s.live++
	if wasTombstone {
		s.tombstones--
	}
	return wlerr.OutcomeAdded, nil
}

// Remove canonicalizes word and tombstones its slot if present.
func (s *Set) Remove(raw string) (wlerr.Outcome, error) {
	canonical := word.Canonicalize(raw)
	if err := word.Validate(canonical); err != nil {
		return wlerr.OutcomeNone, err
	}
	h := fnv1a(canonical)
	idx, found := s.find(canonical, h)
	if !found {
		return wlerr.OutcomeNotFound, nil
	}
	s.slots[idx].state = slotTombstone
	s.slots[idx].word = ""
	s.live--
	s.tombstones++
	return wlerr.OutcomeRemoved, nil
}

// Contains reports whether word (after canonicalization) is present.
func (s *Set) Contains(raw string) bool {
	canonical := word.Canonicalize(raw)
	if canonical == "" {
		return false
	}
	_, found := s.find(canonical, fnv1a(canonical))
	return found
}

// grow doubles capacity and rehashes every live slot into a fresh table,
// dropping tombstones. The old table is left untouched until the new one
// is fully populated, so a failed allocation leaves the set unmodified.
func (s *Set) grow() error {
	oldCap := len(s.slots)
	newCap := oldCap * 2
	if newCap == 0 {
		newCap = initialCapacity
	}
	if newCap > maxCapacity {
		return fmt.Errorf("hashset: capacity would exceed %d: %w", maxCapacity, wlerr.ErrOutOfMemory)
	}
	fresh := make([]slot, newCap)
	freshMask := uint32(newCap - 1)
	for _, sl := range s.slots {
		if sl.state != slotLive {
			continue
		}
		i := sl.hash & freshMask
		for fresh[i].state == slotLive {
			i = (i + 1) & freshMask
		}
		fresh[i] = sl
	}
	s.slots = fresh
	s.tombstones = 0
	s.log.Debugf("hashset: grew capacity %d -> %d (%d live)", oldCap, newCap, s.live)
	return nil
}

// Iter calls fn for every live word in unspecified order. fn must not
// mutate the set; the iteration is invalidated by any subsequent Add or
// Remove call. Iteration stops early if fn returns false.
func (s *Set) Iter(fn func(w string) bool) {
	for _, sl := range s.slots {
		if sl.state == slotLive {
			if !fn(sl.word) {
				return
			}
		}
	}
}
