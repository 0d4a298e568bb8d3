package gridtree

import "iter"

// Tree is a hierarchical, grid-decomposed spatial index over N-dimensional
// axis-aligned volumes (spec §2). It is not safe for concurrent use.
type Tree struct {
	cfg    Config
	bbox   *Box
	values *valueStore
	arena  *arena
	root   *node

	// garbage holds node ids unlinked from their parent during the
	// current (or most recently completed) mutating operation, drained at
	// the end of that operation (spec §4.6, §5).
	garbage []uint64
}

// New returns an empty Tree configured by opts.
func New(opts ...Option) *Tree {
	cfg := buildConfig(opts...)
	t := &Tree{cfg: cfg, values: newValueStore(), arena: newArena()}
	t.root = t.nextNode(nil, cfg.gridMax(), nil)
	return t
}

// NewFromValues returns a Tree seeded with every value in values, in order.
func NewFromValues(values []Value, opts ...Option) *Tree {
	t := New(opts...)
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Insert adds value to the tree, indexing it under every grid cell its box
// touches. Inserting an id that is already present re-stores the value as
// the tree's canonical copy for that id (it does not relocate existing
// bucket references — use Move for that).
func (t *Tree) Insert(value Value) *Tree {
	t.insertOver(value, value.Box(), value.ID(), true)
	return t
}

// Remove erases value's id from the tree. Removing an id that is not
// present is a no-op.
func (t *Tree) Remove(value Value) *Tree {
	t.removeOver(value.Box(), value.ID(), true)
	return t
}

// Move re-indexes value having moved from prev to its current box,
// touching only the cells that differ between the two boxes. The canonical
// stored copy for value.ID() is taken from the value store and is not
// overwritten; Move is a no-op if that id is not currently stored.
func (t *Tree) Move(value Value, prev Box) *Tree {
	t.moveOver(value.Box(), value.ID(), prev)
	return t
}

func (t *Tree) moveOver(newBox Box, id uint64, prev Box) {
	sv, ok := t.values.get(id)
	if !ok {
		return
	}
	for _, removed := range prev.Diff(newBox) {
		t.removeOver(removed, id, false)
	}
	for _, added := range newBox.Diff(prev) {
		t.insertOver(sv.value, added, id, false)
	}
}

func (t *Tree) insertOver(value Value, box Box, id uint64, isNew bool) {
	if t.bbox == nil {
		nb := NewBox(box.Min, box.Max)
		t.bbox = &nb
	} else {
		nb := BoundingBox(*t.bbox, box)
		t.bbox = &nb
	}
	var sv *storedValue
	if isNew {
		sv = t.values.put(value)
	} else {
		var ok bool
		sv, ok = t.values.get(id)
		assertInvariant(ok, "insertOver: id %d has no canonical value (move() before insert())", id)
	}
	c := newCursor(t, modePoints, box)
	for c.hasValue() {
		n, pos := c.pair()
		t.insertAt(n, pos, sv)
		c.advance()
	}
}

func (t *Tree) insertAt(n *node, pos Pos, sv *storedValue) {
	e := n.getOrAdd(pos)
	e.list = append(e.list, sv)
	t.balance(n, pos)
}

func (t *Tree) removeOver(box Box, id uint64, removeAll bool) {
	sv, ok := t.values.get(id)
	if !ok {
		return
	}
	c := newCursor(t, modeEntries, box)
	for c.hasValue() {
		n, pos := c.pair()
		t.removeEntry(n, pos, sv)
		c.advance()
	}
	if removeAll {
		t.values.remove(id)
	}
	for _, gid := range t.garbage {
		t.arena.free(gid)
	}
	t.garbage = t.garbage[:0]
}

func (t *Tree) removeEntry(n *node, pos Pos, sv *storedValue) {
	e := n.get(pos)
	assertInvariant(e != nil, "remove: no entry at the given position")
	assertInvariant(e.kind == entryList, "cannot remove a value from a non-list entry (wrong traversal mode)")
	kept := e.list[:0]
	for _, ref := range e.list {
		if ref.id != sv.id {
			kept = append(kept, ref)
		}
	}
	e.list = kept
	if len(e.list) == 0 {
		t.removeBucket(n, pos)
	}
}

// removeBucket erases the bucket at (n, pos), schedules its child node (if
// any) for reclamation, and propagates upward if n's bucket map is now
// empty. The root is never erased (spec §4.6).
func (t *Tree) removeBucket(n *node, pos Pos) {
	if e := n.get(pos); e != nil {
		if e.kind == entryNode {
			t.garbage = append(t.garbage, e.child.id)
		}
		n.removeBucket(pos)
	}
	if n.empty() && n.parent != nil {
		t.removeBucket(n.parent.node, n.parent.box.Min)
	}
}

// Window returns a lazy sequence over every distinct stored value whose box
// overlaps box, each exactly once, in unspecified order.
func (t *Tree) Window(box Box) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		c := newCursor(t, modeValues, box)
		for c.hasValue() {
			sv := c.value()
			if !yield(sv.value) {
				return
			}
			c.advance()
		}
	}
}

// At returns a lazy sequence over every distinct stored value whose box
// overlaps the single point pos.
func (t *Tree) At(pos Pos) iter.Seq[Value] {
	return t.Window(Unit(pos))
}

// Unordered returns a lazy sequence over every stored value, each exactly
// once, by walking the value store directly (no tree traversal).
func (t *Tree) Unordered() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, sv := range t.values.all() {
			if !yield(sv.value) {
				return
			}
		}
	}
}

// BBox returns the tree's current circumscribing volume, or a unit box at
// the origin if nothing has been inserted since construction or the last
// Clear(). Removal never shrinks it (spec §3 invariant 7): once every value
// is removed, it still returns the last circumscribing volume.
func (t *Tree) BBox() Box {
	if t.bbox != nil {
		return NewBox(t.bbox.Min, t.bbox.Max)
	}
	return Unit(Fill(t.cfg.Dims, 0))
}

// Shape returns BBox().Shape().
func (t *Tree) Shape() Pos { return t.BBox().Shape() }

// Size returns the number of distinct values currently stored.
func (t *Tree) Size() int { return t.values.size() }

// Empty reports whether Size() == 0.
func (t *Tree) Empty() bool { return t.values.size() == 0 }

// Clear empties the tree: it drops every value and node, resets the node id
// counter, and installs a fresh root at the configured max grid.
func (t *Tree) Clear() {
	t.bbox = nil
	t.values.clear()
	t.arena.reset()
	t.garbage = t.garbage[:0]
	t.root = t.nextNode(nil, t.cfg.gridMax(), nil)
}
