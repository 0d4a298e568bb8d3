package gridtree

// Value is anything that can be stored in a Tree: it carries a stable id
// (unique for the value's lifetime in the tree) and an axis-aligned
// bounding box. Two values are equal, for tree purposes, iff their ids are
// equal.
type Value interface {
	ID() uint64
	Box() Box
}
