package staging

type entry[T any] struct {
	value  T
	weight int
}

// Stage collects weighted candidates per key before they are committed to a permanent map.
// For each key the heaviest candidate wins; on equal weight the first one added stays.
type Stage[T any] struct {
	Candidates map[string]entry[T]
	proposed   int
	replaced   int
}

func NewCandidateStage[T any](initialCapacity int) *Stage[T] {
	return &Stage[T]{
		Candidates: make(map[string]entry[T], initialCapacity),
	}
}

func (s *Stage[T]) CandidateCount() int {
	return len(s.Candidates)
}

// Proposed is the number of Add calls.
func (s *Stage[T]) Proposed() int {
	return s.proposed
}

// Replaced is the number of times a staged candidate lost to a heavier one.
func (s *Stage[T]) Replaced() int {
	return s.replaced
}

// Add proposes value for key. It reports whether value is now the staged candidate.
func (s *Stage[T]) Add(key string, value T, weight int) bool {
	s.proposed++

	e, prs := s.Candidates[key]
	if !prs {
		s.Candidates[key] = entry[T]{value: value, weight: weight}
		return true
	}

	// strictly heavier only, so the first of equal candidates stays
	if weight > e.weight {
		s.Candidates[key] = entry[T]{value: value, weight: weight}
		s.replaced++
		return true
	}
	return false
}

// CommitTo copies every staged candidate into permanent, overwriting existing keys.
func (s *Stage[T]) CommitTo(permanent map[string]T) {
	for key, e := range s.Candidates {
		permanent[key] = e.value
	}
}
