package gridtree

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// Dump writes a human-readable tree of every node, bucket and stored id to
// w, for interactive debugging (spec §7). It is not on any hot path and
// walks the tree recursively.
func (t *Tree) Dump(w io.Writer) error {
	root := treeprint.NewWithRoot(fmt.Sprintf("root #%d (grid=%d, buckets=%d)", t.root.id, t.root.grid, len(t.root.buckets)))
	dumpNode(root, t.root)
	_, err := io.WriteString(w, root.String())
	return err
}

func dumpNode(branch treeprint.Tree, n *node) {
	for _, pos := range n.positions() {
		e := n.get(pos)
		switch e.kind {
		case entryList:
			ids := make([]uint64, 0, len(e.list))
			for _, sv := range e.list {
				ids = append(ids, sv.id)
			}
			branch.AddNode(fmt.Sprintf("%s: %v", pos.String(), ids))
		case entryNode:
			sub := branch.AddBranch(fmt.Sprintf("%s -> node #%d (grid=%d, buckets=%d)", pos.String(), e.child.id, e.child.grid, len(e.child.buckets)))
			dumpNode(sub, e.child)
		}
	}
}

// CollectIDs returns, for every stored id, the list of leaf-bucket cells it
// is currently indexed under. A well-formed tree yields at least one cell
// per id present in the value store, and every returned cell overlaps that
// id's stored box.
func (t *Tree) CollectIDs() map[uint64][]Box {
	out := map[uint64][]Box{}
	collectIDs(out, t.root)
	return out
}

func collectIDs(out map[uint64][]Box, n *node) {
	for _, pos := range n.positions() {
		e := n.get(pos)
		switch e.kind {
		case entryList:
			cell := NewBox(pos, pos.AddScalar(n.grid-1))
			for _, sv := range e.list {
				out[sv.id] = append(out[sv.id], cell)
			}
		case entryNode:
			collectIDs(out, e.child)
		}
	}
}

// Nodes returns the number of live nodes in the tree's arena.
func (t *Tree) Nodes() int { return t.arena.size() }

// Depth returns the maximum depth, in nodes, of the tree: the number of
// grid levels from the root down to the finest grid actually reached by a
// split, inclusive. A fresh or never-split tree has depth 1; it grows as
// buckets split into finer-grid child nodes.
func (t *Tree) Depth() int {
	minGrid := t.root.grid
	for _, n := range t.arena.nodes {
		if n.grid < minGrid {
			minGrid = n.grid
		}
	}
	return ceilLog2(t.root.grid) - ceilLog2(minGrid) + 1
}
