package gridtree

import "fmt"

// Pos is an integer coordinate in N-dimensional space. N is fixed by the
// length of the slice, not by a compile-time type parameter: Go generics
// cannot parameterize an array's length on a type parameter's value, so
// dimensionality here is a runtime property, the same way the corpus's own
// N-dimensional spatial code (e.g. hdbscan's NumFeatures()-driven []float64
// rows) carries it.
type Pos []int64

// NewPos returns a Pos built from the given coordinates.
func NewPos(coords ...int64) Pos {
	p := make(Pos, len(coords))
	copy(p, coords)
	return p
}

// Fill returns a Pos of the given dimensionality with every coordinate set
// to k.
func Fill(dims int, k int64) Pos {
	p := make(Pos, dims)
	for i := range p {
		p[i] = k
	}
	return p
}

// Dims returns the dimensionality of p.
func (p Pos) Dims() int { return len(p) }

func (p Pos) requireSameDims(q Pos) {
	if len(p) != len(q) {
		panic(fmt.Sprintf("gridtree: dimension mismatch: %d vs %d", len(p), len(q)))
	}
}

// Clone returns a copy of p.
func (p Pos) Clone() Pos {
	q := make(Pos, len(p))
	copy(q, p)
	return q
}

// Add returns the component-wise sum of p and q.
func (p Pos) Add(q Pos) Pos {
	p.requireSameDims(q)
	r := make(Pos, len(p))
	for i := range p {
		r[i] = p[i] + q[i]
	}
	return r
}

// Sub returns the component-wise difference p - q.
func (p Pos) Sub(q Pos) Pos {
	p.requireSameDims(q)
	r := make(Pos, len(p))
	for i := range p {
		r[i] = p[i] - q[i]
	}
	return r
}

// AddScalar returns p with k added to every coordinate.
func (p Pos) AddScalar(k int64) Pos {
	r := make(Pos, len(p))
	for i := range p {
		r[i] = p[i] + k
	}
	return r
}

// Equal reports whether p and q have the same dimensionality and coordinates.
func (p Pos) Equal(q Pos) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ClampDown floor-snaps each coordinate of p down to the nearest multiple
// of grid.
func (p Pos) ClampDown(grid int64) Pos {
	r := make(Pos, len(p))
	for i := range p {
		r[i] = floorDiv(p[i], grid) * grid
	}
	return r
}

// String renders p for debugging.
func (p Pos) String() string {
	s := "("
	for i, c := range p {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d", c)
	}
	return s + ")"
}
