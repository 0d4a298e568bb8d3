package gridtree

// Box is an axis-aligned, inclusive-inclusive N-dimensional volume:
// every coordinate c of every contained Pos satisfies Min[d] <= c <= Max[d].
type Box struct {
	Min, Max Pos
}

// NewBox returns the box [min, max]. min and max must share dimensionality.
func NewBox(min, max Pos) Box {
	min.requireSameDims(max)
	return Box{Min: min.Clone(), Max: max.Clone()}
}

// Unit returns the single-cell box covering exactly pos.
func Unit(pos Pos) Box {
	return Box{Min: pos.Clone(), Max: pos.Clone()}
}

// Dims returns the dimensionality of b.
func (b Box) Dims() int { return b.Min.Dims() }

// Shape returns the size of b along every dimension (Max - Min + 1).
func (b Box) Shape() Pos {
	return b.Max.Sub(b.Min).AddScalar(1)
}

// Empty reports whether b contains no positions (Min[d] > Max[d] for some d).
func (b Box) Empty() bool {
	for i := range b.Min {
		if b.Min[i] > b.Max[i] {
			return true
		}
	}
	return false
}

// Contains reports whether pos lies within b.
func (b Box) Contains(pos Pos) bool {
	b.Min.requireSameDims(pos)
	for i := range pos {
		if pos[i] < b.Min[i] || pos[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Overlaps reports whether b and other share at least one position.
func (b Box) Overlaps(other Box) bool {
	b.Min.requireSameDims(other.Min)
	for i := range b.Min {
		if b.Max[i] < other.Min[i] || other.Max[i] < b.Min[i] {
			return false
		}
	}
	return true
}

// Intersect returns the overlapping volume of b and other, if any.
func (b Box) Intersect(other Box) (Box, bool) {
	b.Min.requireSameDims(other.Min)
	out := Box{Min: make(Pos, b.Dims()), Max: make(Pos, b.Dims())}
	for i := range b.Min {
		out.Min[i] = max(b.Min[i], other.Min[i])
		out.Max[i] = min(b.Max[i], other.Max[i])
		if out.Min[i] > out.Max[i] {
			return Box{}, false
		}
	}
	return out, true
}

// Clamp snaps b outward to the smallest grid-aligned box (cells of side
// grid) that fully covers b.
func (b Box) Clamp(grid int64) Box {
	out := Box{Min: make(Pos, b.Dims()), Max: make(Pos, b.Dims())}
	for i := range b.Min {
		out.Min[i] = floorDiv(b.Min[i], grid) * grid
		out.Max[i] = floorDiv(b.Max[i], grid)*grid + grid - 1
	}
	return out
}

// Diff returns the sequence of up to 2*Dims() boxes covering b minus other.
func (b Box) Diff(other Box) []Box {
	inter, ok := b.Intersect(other)
	if !ok {
		return []Box{NewBox(b.Min, b.Max)}
	}
	var out []Box
	cur := NewBox(b.Min, b.Max)
	for d := 0; d < b.Dims(); d++ {
		if cur.Min[d] < inter.Min[d] {
			before := NewBox(cur.Min, cur.Max)
			before.Max[d] = inter.Min[d] - 1
			out = append(out, before)
			cur.Min[d] = inter.Min[d]
		}
		if cur.Max[d] > inter.Max[d] {
			after := NewBox(cur.Min, cur.Max)
			after.Min[d] = inter.Max[d] + 1
			out = append(out, after)
			cur.Max[d] = inter.Max[d]
		}
	}
	return out
}

// BoundingBox returns the smallest box containing both a and b.
func BoundingBox(a, b Box) Box {
	a.Min.requireSameDims(b.Min)
	out := Box{Min: make(Pos, a.Dims()), Max: make(Pos, a.Dims())}
	for i := range a.Min {
		out.Min[i] = min(a.Min[i], b.Min[i])
		out.Max[i] = max(a.Max[i], b.Max[i])
	}
	return out
}

// PosIterator is a pull-style, row-major iterator over lattice points. It is
// an explicit state machine (no goroutine, no recursion) so it can live
// inside a traversal frame and be driven one step at a time.
type PosIterator struct {
	box     Box
	step    Pos
	cur     Pos
	started bool
	done    bool
}

// PosIter returns a row-major iterator over every pos in b spaced by step in
// every dimension, starting at b.Min: the last coordinate varies fastest.
func (b Box) PosIter(step Pos) *PosIterator {
	return &PosIterator{box: b, step: step, cur: b.Min.Clone()}
}

// Next advances the iterator and returns the next position, or (nil, false)
// once exhausted.
func (it *PosIterator) Next() (Pos, bool) {
	if it.done {
		return nil, false
	}
	n := it.box.Dims()
	if n == 0 {
		it.done = true
		return nil, false
	}
	if !it.started {
		it.started = true
		for d := 0; d < n; d++ {
			if it.cur[d] > it.box.Max[d] {
				it.done = true
				return nil, false
			}
		}
		return it.cur.Clone(), true
	}
	d := n - 1
	for d >= 0 {
		it.cur[d] += it.step[d]
		if it.cur[d] <= it.box.Max[d] {
			break
		}
		it.cur[d] = it.box.Min[d]
		d--
	}
	if d < 0 {
		it.done = true
		return nil, false
	}
	return it.cur.Clone(), true
}

// BoxIterator is a pull-style iterator over the cells tiling a box.
type BoxIterator struct {
	pos   *PosIterator
	shape Pos
}

// BoxIter returns an iterator over the cells of the given shape tiling b,
// in row-major order, each yielded as its own Box.
func (b Box) BoxIter(shape Pos) *BoxIterator {
	return &BoxIterator{pos: b.PosIter(shape), shape: shape}
}

// Next advances the iterator and returns the next cell, or (Box{}, false)
// once exhausted.
func (it *BoxIterator) Next() (Box, bool) {
	p, ok := it.pos.Next()
	if !ok {
		return Box{}, false
	}
	return Box{Min: p, Max: p.Add(it.shape).AddScalar(-1)}, true
}
