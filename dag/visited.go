package dag

// visitSet tracks which nodes a single walk has discovered. One set lives
// on each walk's stack frame, so two walks over the same graph never see
// each other's marks and nothing has to be reset when the walk ends, on
// success or failure alike.
type visitSet struct {
	marked []bool // indexed by Handle
}

// newVisitSet sizes the set for an arena of n slots.
func newVisitSet(n int) *visitSet {
	return &visitSet{marked: make([]bool, n)}
}

// mark records h as discovered.
func (s *visitSet) mark(h Handle) { s.marked[h] = true }

// has reports whether h was already discovered in this walk.
func (s *visitSet) has(h Handle) bool { return s.marked[h] }
