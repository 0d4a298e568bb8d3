package gridtree

// entity is a minimal mutable Value used across the test files: its box is
// computed live from its current fields, mirroring the game-entity shape
// the original index was built to serve (a moving actor whose box tracks
// its live position, not a snapshot taken at insert time).
type entity struct {
	id  uint64
	pos Pos
	max Pos
}

func newEntity(id uint64, min, max Pos) *entity {
	return &entity{id: id, pos: min, max: max}
}

func newPointEntity(id uint64, pos Pos) *entity {
	return &entity{id: id, pos: pos, max: pos}
}

func (e *entity) ID() uint64 { return e.id }

func (e *entity) Box() Box { return NewBox(e.pos, e.max) }

// moveTo relocates e in place, so a stored *entity's Box() reflects the new
// location without a fresh Insert.
func (e *entity) moveTo(min, max Pos) {
	e.pos = min
	e.max = max
}
