package interlock

// CellSet is an unordered hash set of GridPoint3: every voxel set in this
// package (shells, contact, air) is held in memory as a hash set of
// integer triples, since they only ever need "is this cell a member".
type CellSet struct {
	cells map[GridPoint3]struct{}
}

// NewCellSet returns an empty CellSet, optionally pre-sized when the
// caller has an estimate of the final membership count from a pre-scan.
func NewCellSet(sizeHint int) *CellSet {
	return &CellSet{cells: make(map[GridPoint3]struct{}, sizeHint)}
}

// Insert adds g to the set. Always returns true so it can be used
// directly as a walker visitor.
func (s *CellSet) Insert(g GridPoint3) bool {
	s.cells[g] = struct{}{}
	return true
}

// Has reports whether g is a member.
func (s *CellSet) Has(g GridPoint3) bool {
	_, ok := s.cells[g]
	return ok
}

// Len returns the number of cells in the set.
func (s *CellSet) Len() int { return len(s.cells) }

// Each calls visit for every member, stopping early if visit returns
// false. Iteration order is unspecified: membership is the only
// observable property of a CellSet.
func (s *CellSet) Each(visit func(GridPoint3) bool) bool {
	for g := range s.cells {
		if !visit(g) {
			return false
		}
	}
	return true
}

// Intersect returns the set of cells present in both s and other: the
// contact cells between two shells.
func (s *CellSet) Intersect(other *CellSet) *CellSet {
	small, big := s, other
	if big.Len() < small.Len() {
		small, big = big, small
	}
	out := NewCellSet(small.Len())
	small.Each(func(g GridPoint3) bool {
		if big.Has(g) {
			out.Insert(g)
		}
		return true
	})
	return out
}

// Subtract returns the cells in s that are not in other, used by air
// filtering to remove the dilated-boundary cells from contact.
func (s *CellSet) Subtract(other *CellSet) *CellSet {
	out := NewCellSet(s.Len())
	s.Each(func(g GridPoint3) bool {
		if !other.Has(g) {
			out.Insert(g)
		}
		return true
	})
	return out
}
