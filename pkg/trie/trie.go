/*
Package trie implements the engine's ordered-prefix completion index: a
byte-keyed trie whose children are kept in ascending-byte order so that
depth-first traversal yields byte-lexicographic results, as spec.md §4.2
requires.

Unlike a radix/Patricia trie (which compresses single-child chains into
one edge), every node here holds exactly one input byte. That costs more
nodes per word but gives Remove a node-per-byte granularity to prune, which
spec.md §4.2's unwind rule ("deallocate a node iff it has no children and
no terminal flag") depends on.

Time Complexity:
  - Insert / Remove: O(k), k = len(word) in bytes.
  - Complete: O(k + m), k = len(prefix), m = bytes emitted.
*/
package trie

import (
	"sort"

	charmlog "github.com/charmbracelet/log"

	"github.com/kavanhollis/lexarbor/internal/logger"
)

// child pairs a byte with the node reached by consuming it, kept sorted
// ascending by b within node.children.
type child struct {
	b    byte
	node *node
}

type node struct {
	children []child
	terminal bool
}

func (n *node) find(b byte) (int, bool) {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].b >= b })
	if i < len(n.children) && n.children[i].b == b {
		return i, true
	}
	return i, false
}

func (n *node) childAt(b byte) *node {
	i, ok := n.find(b)
	if !ok {
		return nil
	}
	return n.children[i].node
}

func (n *node) getOrCreate(b byte) *node {
	i, ok := n.find(b)
	if ok {
		return n.children[i].node
	}
	c := child{b: b, node: &node{}}
	n.children = append(n.children, child{})
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	return c.node
}

// Trie is an ordered-prefix index. The zero value is not usable; use New.
type Trie struct {
	root *node
	size int
	log  *charmlog.Logger
}

// Option configures a Trie at construction time.
type Option func(*Trie)

// WithLogger injects the logger Trie uses for prune diagnostics.
func WithLogger(l *charmlog.Logger) Option {
	return func(t *Trie) { t.log = l }
}

// New returns an empty Trie.
func New(opts ...Option) *Trie {
	t := &Trie{root: &node{}, log: logger.New("trie")}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Size returns the number of distinct words stored.
func (t *Trie) Size() int { return t.size }

// Insert adds word to the trie. Inserting a word already present is a
// no-op, matching the multiset-membership idempotence spec.md §4.2
// requires.
func (t *Trie) Insert(w string) {
	if w == "" {
		return
	}
	n := t.root
	for i := 0; i < len(w); i++ {
		n = n.getOrCreate(w[i])
	}
	if !n.terminal {
		n.terminal = true
		t.size++
	}
}

// Remove deletes word from the trie if present. Removing an absent word
// is a no-op. Nodes left with no children and no terminal flag after the
// walk unwinds are pruned, per spec.md §4.2.
func (t *Trie) Remove(w string) {
	if w == "" {
		return
	}
	type step struct {
		parent *node
		b      byte
	}
	path := make([]step, 0, len(w))
	n := t.root
	for i := 0; i < len(w); i++ {
		next := n.childAt(w[i])
		if next == nil {
			return
		}
		path = append(path, step{parent: n, b: w[i]})
		n = next
	}
	if !n.terminal {
		return
	}
	n.terminal = false
	t.size--

	cur := n
	pruned := 0
	for i := len(path) - 1; i >= 0; i-- {
		if len(cur.children) != 0 || cur.terminal {
			break
		}
		parent := path[i].parent
		idx, ok := parent.find(path[i].b)
		if !ok {
			break
		}
		parent.children = append(parent.children[:idx], parent.children[idx+1:]...)
		cur = parent
		pruned++
	}
	if pruned > 0 {
		t.log.Debugf("trie: pruned %d dead node(s) removing %q", pruned, w)
	}
}

// Contains reports whether word is present as a complete entry (not
// merely a prefix).
func (t *Trie) Contains(w string) bool {
	n := t.walk(w)
	return n != nil && n.terminal
}

func (t *Trie) walk(prefix string) *node {
	n := t.root
	for i := 0; i < len(prefix); i++ {
		n = n.childAt(prefix[i])
		if n == nil {
			return nil
		}
	}
	return n
}

// Complete returns every word beginning with prefix, in byte-lexicographic
// order, capped at limit results (limit <= 0 means unlimited). If prefix
// is itself a stored word, it is included and sorts first among entries
// sharing that prefix.
func (t *Trie) Complete(prefix string, limit int) []string {
	landing := t.walk(prefix)
	if landing == nil {
		return nil
	}
	var out []string
	buf := make([]byte, 0, 32)
	var dfs func(n *node) bool
	dfs = func(n *node) bool {
		if n.terminal {
			out = append(out, prefix+string(buf))
			if limit > 0 && len(out) >= limit {
				return false
			}
		}
		for _, c := range n.children {
			buf = append(buf, c.b)
			cont := dfs(c.node)
			buf = buf[:len(buf)-1]
			if !cont {
				return false
			}
		}
		return true
	}
	dfs(landing)
	return out
}
