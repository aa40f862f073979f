package world

import "github.com/zyedidia/generic/mapset"

// Changes is the set of cells mutated since the last frame
type Changes struct {
	Cells []Position
	Full  bool
}

// Empty reports whether nothing needs redrawing
func (c Changes) Empty() bool {
	return !c.Full && len(c.Cells) == 0
}

// ChangeTracker is an Observer that accumulates grid changes between frames.
// Once a full redraw is pending, single-cell changes are no longer recorded.
type ChangeTracker struct {
	seen  mapset.Set[Position]
	order []Position
	full  bool
}

// NewChangeTracker creates an empty tracker
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{seen: mapset.New[Position]()}
}

// CellChanged records a single-cell change
func (t *ChangeTracker) CellChanged(pos Position) {
	if t.full || t.seen.Has(pos) {
		return
	}
	t.seen.Put(pos)
	t.order = append(t.order, pos)
}

// Redraw records that the whole grid must be redrawn
func (t *ChangeTracker) Redraw() {
	t.full = true
	t.seen.Clear()
	t.order = nil
}

// Pending reports whether any change is waiting to be taken
func (t *ChangeTracker) Pending() bool {
	return t.full || len(t.order) > 0
}

// Take returns the accumulated changes and resets the tracker
func (t *ChangeTracker) Take() Changes {
	c := Changes{Cells: t.order, Full: t.full}
	t.seen.Clear()
	t.order = nil
	t.full = false
	return c
}
