/*
Package wordlib is the public facade over the engine: one WordLib value
composes a Hash Set, Trie, BK-Tree, Tokenizer, and Persistence layer,
keeps them consistent on every mutation, and tracks a dirty flag.

WordLib is the only type adapters (CLI, editor integration) should ever
hold. Its five components are never exposed directly, matching
spec.md §9's "no exceptions across the boundary, no dynamic dispatch."
*/
package wordlib

import (
	charmlog "github.com/charmbracelet/log"

	"github.com/kavanhollis/lexarbor/internal/logger"
	"github.com/kavanhollis/lexarbor/pkg/bktree"
	"github.com/kavanhollis/lexarbor/pkg/hashset"
	"github.com/kavanhollis/lexarbor/pkg/persist"
	"github.com/kavanhollis/lexarbor/pkg/tokenizer"
	"github.com/kavanhollis/lexarbor/pkg/trie"
	"github.com/kavanhollis/lexarbor/pkg/wlerr"
	"github.com/kavanhollis/lexarbor/pkg/word"
)

// log is re-created per call rather than cached in a package var, so a
// caller's log.SetLevel (typically set during flag parsing, after package
// init) is always honored.
func log() *charmlog.Logger { return logger.New("wordlib") }

// rebuildThreshold is the tombstone fraction (of live BK-tree size) past
// which the facade rebuilds the BK-tree eagerly, per spec.md §9.
const rebuildThreshold = 0.25

// WordLib is a complete, in-memory word library engine. The zero value is
// not usable; use New.
type WordLib struct {
	set   *hashset.Set
	tr    *trie.Trie
	bk    *bktree.Tree
	tcfg  tokenizer.Config
	dirty bool
}

// Option configures a WordLib at construction time.
type Option func(*WordLib)

// WithTokenizerConfig overrides the tokenizer configuration used by
// CheckText. The default is tokenizer.DefaultConfig().
func WithTokenizerConfig(cfg tokenizer.Config) Option {
	return func(w *WordLib) { w.tcfg = cfg }
}

// New returns an empty engine.
func New(opts ...Option) *WordLib {
	w := &WordLib{
		set:  hashset.New(),
		tr:   trie.New(),
		bk:   bktree.New(),
		tcfg: tokenizer.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Canonicalize exposes the engine's canonicalization rule (whitespace
// trim, ASCII-only lowercase) so adapters can predict how a word will be
// matched before calling Add or Contains.
func Canonicalize(raw string) string { return word.Canonicalize(raw) }

// Add inserts word into all three indexes. The Hash Set is updated first;
// if it rejects the word or already holds it, Trie and BK-Tree are left
// untouched. Trie and BK-Tree inserts have no failure path, so once the
// Hash Set accepts the word both are updated unconditionally and there is
// no rollback step.
func (w *WordLib) Add(raw string) (wlerr.Outcome, error) {
	outcome, err := w.set.Add(raw)
	if err != nil || outcome != wlerr.OutcomeAdded {
		return outcome, err
	}

	canonical := word.Canonicalize(raw)
	w.tr.Insert(canonical)
	w.bk.Insert(canonical)
	w.dirty = true
	return wlerr.OutcomeAdded, nil
}

// Remove deregisters word from Trie and BK-Tree before the Hash Set frees
// its canonical bytes, per spec.md §5's shared-resource ordering rule.
func (w *WordLib) Remove(raw string) (wlerr.Outcome, error) {
	canonical := word.Canonicalize(raw)
	if err := word.Validate(canonical); err != nil {
		return wlerr.OutcomeNone, err
	}
	if !w.set.Contains(canonical) {
		return wlerr.OutcomeNotFound, nil
	}

	w.tr.Remove(canonical)
	w.bk.Remove(canonical)
	outcome, err := w.set.Remove(canonical)
	if err != nil {
		return outcome, err
	}
	w.dirty = true
	w.maybeRebuildBKTree()
	return outcome, nil
}

// Contains reports whether word (after canonicalization) is in the
// dictionary.
func (w *WordLib) Contains(raw string) bool { return w.set.Contains(raw) }

// Count returns the number of live words.
func (w *WordLib) Count() int { return w.set.Count() }

// IsDirty reports whether the dictionary has mutated since the last
// successful Save or Load.
func (w *WordLib) IsDirty() bool { return w.dirty }

// Complete returns every word beginning with prefix, byte-lexicographic,
// capped at limit (limit <= 0 means unlimited).
func (w *WordLib) Complete(prefix string, limit int) []string {
	return w.tr.Complete(prefix, limit)
}

// Suggest returns every live word within maxDistance edits of word,
// excluding word itself, ordered by (distance asc, word asc), capped at
// limit. word is canonicalized before matching, as is every stored
// candidate, so the comparison is case-insensitive for ASCII.
func (w *WordLib) Suggest(raw string, maxDistance, limit int) []bktree.Match {
	return w.bk.Suggest(word.Canonicalize(raw), maxDistance, limit)
}

// UnknownSpan is one token from CheckText that was not found in the
// dictionary.
type UnknownSpan struct {
	Start, End int
	Word       string
}

// CheckText tokenizes text using the engine's configured tokenizer and
// returns, in tokenizer order, at most limit spans whose word is not in
// the dictionary (limit <= 0 means unlimited).
func (w *WordLib) CheckText(text string, limit int) []UnknownSpan {
	spans := tokenizer.Tokenize(text, w.tcfg)
	var out []UnknownSpan
	for _, sp := range spans {
		token := text[sp.Start:sp.End]
		if w.set.Contains(token) {
			continue
		}
		out = append(out, UnknownSpan{Start: sp.Start, End: sp.End, Word: token})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// Load replaces the engine's contents with the words found at path. A
// missing file is success with an empty engine. Malformed lines are
// skipped and counted, not treated as a failure, unless every non-blank
// line in the file is malformed, in which case persist.Load fails with
// wlerr.ErrFormat and the engine is left untouched. The Trie and BK-Tree
// are rebuilt from the canonical words the fresh Hash Set accepted, in
// file order.
func (w *WordLib) Load(path string) (skipped int, err error) {
	res, err := persist.Load(path)
	if err != nil {
		return 0, err
	}

	w.set = hashset.New()
	w.tr = trie.New()
	canonical := make([]string, 0, len(res.Words))
	for _, line := range res.Words {
		outcome, addErr := w.set.Add(line)
		if addErr != nil {
			log().Warnf("wordlib: dropping malformed line %q on load: %v", line, addErr)
			res.SkippedLines++
			continue
		}
		if outcome == wlerr.OutcomeAdded {
			canonical = append(canonical, word.Canonicalize(line))
		}
	}
	for _, c := range canonical {
		w.tr.Insert(c)
	}
	w.bk = bktree.Rebuild(canonical)
	w.dirty = false
	return res.SkippedLines, nil
}

// Save writes the current dictionary to path using the atomic rename
// protocol in pkg/persist, clears the dirty flag on success, and rebuilds
// the BK-Tree so persisted snapshots never carry stale tombstones.
func (w *WordLib) Save(path string) error {
	words := make([]string, 0, w.set.Count())
	w.set.Iter(func(word string) bool {
		words = append(words, word)
		return true
	})
	if err := persist.Save(path, words); err != nil {
		return err
	}
	w.bk = bktree.Rebuild(words)
	w.dirty = false
	return nil
}

func (w *WordLib) maybeRebuildBKTree() {
	live := w.bk.Size()
	tomb := w.bk.Tombstones()
	if live == 0 || float64(tomb)/float64(live) <= rebuildThreshold {
		return
	}
	words := make([]string, 0, live)
	w.set.Iter(func(word string) bool {
		words = append(words, word)
		return true
	})
	w.bk = bktree.Rebuild(words)
	log().Debugf("wordlib: rebuilt BK-tree, %d tombstones reclaimed", tomb)
}
