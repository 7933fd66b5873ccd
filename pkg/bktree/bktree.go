/*
Package bktree implements the engine's bounded edit-distance suggestion
index: a Burkhard-Keller tree keyed by integer Levenshtein distance, used
to answer "words within k edits of this query" without scanning every
entry.

A node's children are keyed by the distance from the node's own word to
the child's word — the tree invariant spec.md §4.3 names: for a (parent,
child) pair attached under key k, distance(parent.word, child.word) == k.
Search prunes whole subtrees using the triangle inequality: if a query is
d away from a node, any match within maxDistance can only live under a
child key within [d-maxDistance, d+maxDistance].

Remove tombstones a node in place rather than restructuring the tree
(spec.md §4.3); pkg/wordlib is responsible for calling Rebuild once the
tombstone fraction crosses its 25% threshold, or on load/save.

Time Complexity:
  - Insert: O(depth), typically O(log n) for well-distributed words.
  - Search: sublinear in practice via triangle-inequality pruning;
    O(n) worst case, same as brute force, when distances cluster.
*/
package bktree

import (
	charmlog "github.com/charmbracelet/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/kavanhollis/lexarbor/internal/logger"
)

type node struct {
	word      string
	tombstone bool
	children  map[int]*node
}

func newNode(w string) *node {
	return &node{word: w, children: make(map[int]*node)}
}

// Tree is a BK-tree over canonical words. The zero value is not usable;
// use New.
type Tree struct {
	root       *node
	size       int // live (non-tombstoned) word count
	tombstones int
	log        *charmlog.Logger
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithLogger injects the logger Tree uses for rebuild diagnostics.
func WithLogger(l *charmlog.Logger) Option {
	return func(t *Tree) { t.log = l }
}

// New returns an empty Tree.
func New(opts ...Option) *Tree {
	t := &Tree{log: logger.New("bktree")}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Size returns the number of live (non-tombstoned) words.
func (t *Tree) Size() int { return t.size }

// Tombstones returns the number of tombstoned nodes still occupying the
// tree structure.
func (t *Tree) Tombstones() int { return t.tombstones }

// Distance returns the Levenshtein edit distance between a and b, counted
// over bytes with unit substitution/insertion/deletion cost. It runs in
// O(min(|a|,|b|)) memory using two rolling rows, per spec.md §4.3.
func Distance(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			curr[j] = m
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Insert adds w to the tree. Duplicates (a word already present, live or
// tombstoned) are idempotent: a tombstoned match is revived instead of
// duplicated, matching the facade's expectation that add-after-remove
// restores full consistency across all three indexes.
func (t *Tree) Insert(w string) {
	if t.root == nil {
		t.root = newNode(w)
		t.size = 1
		return
	}
	cur := t.root
	for {
		if cur.word == w {
			if cur.tombstone {
				cur.tombstone = false
				t.tombstones--
				t.size++
			}
			return
		}
		d := Distance(cur.word, w)
		if next, ok := cur.children[d]; ok {
			cur = next
			continue
		}
		cur.children[d] = newNode(w)
		t.size++
		return
	}
}

// findNode walks the deterministic distance path from the root to locate
// the node holding word, or nil if absent.
func (t *Tree) findNode(w string) *node {
	cur := t.root
	for cur != nil {
		if cur.word == w {
			return cur
		}
		d := Distance(cur.word, w)
		cur = cur.children[d]
	}
	return nil
}

// Remove tombstones w if present and live. The tree structure (and the
// node's children) is left untouched.
func (t *Tree) Remove(w string) bool {
	n := t.findNode(w)
	if n == nil || n.tombstone {
		return false
	}
	n.tombstone = true
	t.tombstones++
	t.size--
	return true
}

// Match is a single suggestion: a candidate word and its edit distance
// from the query.
type Match struct {
	Word     string
	Distance int
}

// Suggest returns every live word within maxDistance edits of query,
// excluding query itself, ordered by ascending distance then ascending
// byte-lexicographic word, truncated to limit (limit <= 0 means
// unlimited).
func (t *Tree) Suggest(query string, maxDistance, limit int) []Match {
	if t.root == nil || maxDistance < 0 {
		return nil
	}
	var out []Match
	var walk func(n *node)
	walk = func(n *node) {
		d := Distance(n.word, query)
		if d <= maxDistance && !n.tombstone && n.word != query {
			out = append(out, Match{Word: n.word, Distance: d})
		}
		keys := maps.Keys(n.children)
		slices.Sort(keys)
		for _, k := range keys {
			if k >= d-maxDistance && k <= d+maxDistance {
				walk(n.children[k])
			}
		}
	}
	walk(t.root)

	slices.SortFunc(out, func(a, b Match) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		if a.Word < b.Word {
			return -1
		}
		if a.Word > b.Word {
			return 1
		}
		return 0
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Rebuild discards tombstones by reconstructing the tree from scratch
// given the full current word list, in insertion order. pkg/wordlib calls
// this once the tombstone fraction crosses its threshold, or on load/save.
func Rebuild(words []string, opts ...Option) *Tree {
	t := New(opts...)
	for _, w := range words {
		t.Insert(w)
	}
	t.log.Debugf("bktree: rebuilt tree with %d word(s)", t.size)
	return t
}
