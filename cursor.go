package gridtree

// traversalMode selects one of the three behaviors the cursor's single
// state machine can drive (spec §4.7).
type traversalMode int

const (
	// modePoints visits every (node, pos) pair pos_iter produces at every
	// reachable node, including positions whose bucket is absent. Used by
	// Insert.
	modePoints traversalMode = iota
	// modeEntries visits every (node, pos) pair for which a bucket
	// exists. Used by Remove.
	modeEntries
	// modeValues visits every distinct value whose box overlaps the query
	// box, each exactly once. Used by Window.
	modeValues
)

// frame is one level of the traversal's pending-work stack: a node, the
// volume the cursor is scoped to within it, and (for modeValues) a cursor
// into whichever bucket list is currently being scanned.
type frame struct {
	node *node
	vol  Box

	pair   *PosIterator
	curPos Pos

	list       []*storedValue
	listPos    int
	listActive bool
}

// cursor is the reentrant traversal state machine described in spec §4.7
// and §9: an explicit stack of frames, never a recursive generator, so that
// insert/remove/window share one walker with three tiny behavioral
// differences (per-pair disposition, and whether a list cursor exists at
// all).
type cursor struct {
	tree *Tree
	mode traversalMode
	box  Box

	worklist []*frame
	visited  map[uint64]struct{}
}

func newCursor(t *Tree, mode traversalMode, box Box) *cursor {
	c := &cursor{tree: t, mode: mode, box: box}
	if mode == modeValues {
		c.visited = map[uint64]struct{}{}
	}
	if t.root != nil {
		c.worklist = append(c.worklist, &frame{node: t.root, vol: box})
		c.advance()
	}
	return c
}

// hasValue reports whether the cursor currently sits on a yielded pair or
// value. The cursor halts, per spec, exactly when the worklist empties.
func (c *cursor) hasValue() bool { return len(c.worklist) > 0 }

// pair returns the (node, pos) the cursor currently sits on. Valid only in
// modePoints / modeEntries.
func (c *cursor) pair() (*node, Pos) {
	assertInvariant(c.hasValue(), "attempted to dereference an empty traversal cursor")
	f := c.worklist[len(c.worklist)-1]
	return f.node, f.curPos
}

// value returns the value the cursor currently sits on. Valid only in
// modeValues.
func (c *cursor) value() *storedValue {
	assertInvariant(c.hasValue(), "attempted to dereference an empty traversal cursor")
	f := c.worklist[len(c.worklist)-1]
	assertInvariant(f.listActive, "attempted to dereference an empty traversal cursor")
	return f.list[f.listPos]
}

func (c *cursor) skipValue(f *frame) bool {
	sv := f.list[f.listPos]
	if _, seen := c.visited[sv.id]; seen {
		return true
	}
	return !sv.value.Box().Overlaps(c.box)
}

// visitNextPair runs the per-pair disposition rules at f.curPos and reports
// whether the cursor should stop there (true = yield, false = keep
// advancing).
func (c *cursor) visitNextPair(f *frame) bool {
	e := f.node.get(f.curPos)
	if e == nil {
		return c.mode == modePoints
	}
	switch e.kind {
	case entryList:
		if c.mode != modeValues {
			return true
		}
		f.list = e.list
		f.listPos = 0
		f.listActive = len(f.list) > 0
		for f.listActive && c.skipValue(f) {
			f.listPos++
			if f.listPos >= len(f.list) {
				f.listActive = false
			}
		}
		if !f.listActive {
			return false
		}
		c.visited[f.list[f.listPos].id] = struct{}{}
		return true
	case entryNode:
		child := e.child
		assertInvariant(child.parent != nil, "sub-node #%d had no parent entry", child.id)
		if newVol, ok := child.parent.box.Intersect(c.box); ok {
			c.worklist = append(c.worklist, &frame{node: child, vol: newVol})
		}
		return false
	default:
		return false
	}
}

func (c *cursor) advanceList(f *frame) bool {
	for {
		f.listPos++
		if f.listPos >= len(f.list) {
			f.listActive = false
			return false
		}
		if !c.skipValue(f) {
			break
		}
	}
	c.visited[f.list[f.listPos].id] = struct{}{}
	return true
}

func (c *cursor) advancePair(f *frame) bool {
	pos, ok := f.pair.Next()
	if !ok {
		c.worklist = c.worklist[:len(c.worklist)-1]
		return false
	}
	f.curPos = pos
	return c.visitNextPair(f)
}

func (c *cursor) advanceNode(f *frame) bool {
	f.pair = f.node.posIter(f.vol)
	pos, ok := f.pair.Next()
	if !ok {
		c.worklist = c.worklist[:len(c.worklist)-1]
		return false
	}
	f.curPos = pos
	return c.visitNextPair(f)
}

// advance runs the scheduling rule from spec §4.7: the innermost available
// cursor advances first — list cursor, else pair cursor, else a fresh pair
// cursor for the frame — popping frames whose pair cursor is exhausted,
// until some step yields or the worklist empties.
func (c *cursor) advance() {
	for len(c.worklist) > 0 {
		f := c.worklist[len(c.worklist)-1]
		var stop bool
		switch {
		case f.listActive:
			stop = c.advanceList(f)
		case f.pair != nil:
			stop = c.advancePair(f)
		default:
			stop = c.advanceNode(f)
		}
		if stop {
			return
		}
	}
}
