package gridtree

// arena owns every node record by auto-increment id, handing out stable
// *node pointers. A node obtained from the arena stays valid until its id
// is placed in the tree's garbage list and that list is drained (spec §4.1,
// §5).
type arena struct {
	nodes  map[uint64]*node
	nextID uint64
}

func newArena() *arena {
	return &arena{nodes: map[uint64]*node{}}
}

// alloc creates and registers a new node at the given grid with the given
// parent link (nil for the root).
func (a *arena) alloc(grid int64, parent *parentLink) *node {
	id := a.nextID
	a.nextID++
	n := newNode(id, grid, parent)
	a.nodes[id] = n
	return n
}

// get returns the node for id, if it is still live.
func (a *arena) get(id uint64) (*node, bool) {
	n, ok := a.nodes[id]
	return n, ok
}

// free unregisters id. Actual release of the node's own memory is left to
// the garbage collector once nothing references it; this only drops the
// arena's retaining reference.
func (a *arena) free(id uint64) {
	delete(a.nodes, id)
}

// size returns the number of live nodes.
func (a *arena) size() int { return len(a.nodes) }

// reset empties the arena and restarts the id counter.
func (a *arena) reset() {
	a.nodes = map[uint64]*node{}
	a.nextID = 0
}
