// Package tsp: frontier of open search nodes.
//
// Selection rule: the node with the minimum bound wins; among nodes sharing
// the minimum bound the earliest inserted wins. Two containers implement it:
//
//   - scanFrontier keeps insertion order and scans for the first strict
//     minimum (O(k) per pop). It is the reference behaviour.
//   - treeFrontier keeps nodes in a B-tree ordered by (bound, seq), where seq
//     is the insertion counter (O(log k) per pop). The smallest key is by
//     construction the earliest-inserted minimum, so pop order is identical.
package tsp

import "github.com/tidwall/btree"

// frontier is the open-node container owned by a single search.
type frontier interface {
	push(nd *node)
	pop() *node // nil when empty
	len() int
}

func newFrontier(kind FrontierKind) frontier {
	if kind == FrontierScan {
		return &scanFrontier{}
	}

	return newTreeFrontier()
}

// scanFrontier is a plain slice in insertion order.
type scanFrontier struct {
	items []*node
}

func (f *scanFrontier) push(nd *node) { f.items = append(f.items, nd) }

func (f *scanFrontier) len() int { return len(f.items) }

func (f *scanFrontier) pop() *node {
	if len(f.items) == 0 {
		return nil
	}
	var (
		best = 0
		i    int
	)
	for i = 1; i < len(f.items); i++ {
		// Strictly less: on equal bounds the earlier index is kept.
		if f.items[i].bound < f.items[best].bound {
			best = i
		}
	}
	nd := f.items[best]
	// Preserve relative order of the remaining nodes.
	copy(f.items[best:], f.items[best+1:])
	f.items[len(f.items)-1] = nil
	f.items = f.items[:len(f.items)-1]

	return nd
}

// treeFrontier orders nodes by (bound, seq).
type treeFrontier struct {
	tr *btree.BTreeG[*node]
}

// nodeLess orders by bound, then by insertion sequence.
func nodeLess(a, b *node) bool {
	if a.bound != b.bound {
		return a.bound < b.bound
	}

	return a.seq < b.seq
}

func newTreeFrontier() *treeFrontier {
	// One search owns its frontier; no locking needed.
	return &treeFrontier{
		tr: btree.NewBTreeGOptions[*node](nodeLess, btree.Options{NoLocks: true}),
	}
}

func (f *treeFrontier) push(nd *node) { f.tr.Set(nd) }

func (f *treeFrontier) len() int { return f.tr.Len() }

func (f *treeFrontier) pop() *node {
	nd, ok := f.tr.PopMin()
	if !ok {
		return nil
	}

	return nd
}
