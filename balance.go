package gridtree

// nextNode allocates a new node under parent (nil for the root) at the
// given grid, seeds its buckets from seeds, and immediately balances it so
// any seeded bucket already over the split threshold splits again before
// the caller ever sees it (spec §4.4).
func (t *Tree) nextNode(parent *parentLink, grid int64, seeds []*storedValue) *node {
	n := t.arena.alloc(grid, parent)
	gridFill := Fill(t.cfg.Dims, grid)
	for _, sv := range seeds {
		vbox := sv.value.Box()
		region := vbox
		if parent != nil {
			r, ok := vbox.Intersect(parent.box)
			if !ok {
				continue
			}
			region = r
		}
		cells := region.Clamp(grid).BoxIter(gridFill)
		for {
			cell, ok := cells.Next()
			if !ok {
				break
			}
			if cell.Overlaps(vbox) {
				n.initList(cell.Min, sv)
			}
		}
	}
	t.balanceNode(n)
	return n
}

// balancePos applies the per-bucket split policy at (node, pos): a List
// entry whose size exceeds MaxEntries becomes a finer-grid child node
// seeded from the list's former contents; a Node entry recurses, letting a
// multi-level overfull cascade settle in one pass.
func (t *Tree) balancePos(n *node, pos Pos) {
	e := n.get(pos)
	if e == nil {
		return
	}
	switch e.kind {
	case entryList:
		if len(e.list) > t.cfg.MaxEntries && n.grid > t.cfg.gridMin() {
			childGrid := n.grid / 2
			childBox := NewBox(pos, pos.AddScalar(n.grid-1))
			parent := &parentLink{node: n, box: childBox}
			seeds := e.list
			child := t.nextNode(parent, childGrid, seeds)
			e.kind = entryNode
			e.child = child
			e.list = nil
		}
	case entryNode:
		t.balanceNode(e.child)
	}
}

// balance is the single-bucket entry point used right after an insert: a
// no-op once the node is already at the finest allowed grid.
func (t *Tree) balance(n *node, pos Pos) {
	if n.grid <= t.cfg.gridMin() {
		return
	}
	t.balancePos(n, pos)
}

// balanceNode scans every occupied bucket in n and applies the split
// policy to each, in unspecified order.
func (t *Tree) balanceNode(n *node) {
	if n.grid <= t.cfg.gridMin() {
		return
	}
	for _, pos := range n.positions() {
		t.balancePos(n, pos)
	}
}
