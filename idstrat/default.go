package idstrat

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
)

// DefaultStrategy is the identity strategy: id and index are always the
// same int, and the bijection is trivially maintained by construction.
// This is the common case — index graphs use it for both vertices and
// edges since their ids are defined to be their indices.
type DefaultStrategy struct {
	n              int
	swapListeners  []graph.SwapListener
	addRmListeners []graph.AddRemoveListener
}

// NewDefaultStrategy returns an empty identity strategy.
func NewDefaultStrategy() *DefaultStrategy {
	return &DefaultStrategy{}
}

func (s *DefaultStrategy) Size() int { return s.n }

func (s *DefaultStrategy) NewIdx() (int, int) {
	idx := s.n
	s.n++
	for _, l := range s.addRmListeners {
		l.IndexAdded(idx)
	}
	return idx, idx
}

func (s *DefaultStrategy) NewIdxWith(id int) (int, error) {
	if id != s.n {
		return 0, fmt.Errorf("idstrat: identity strategy requires id == next index (got id=%d, next=%d): %w", id, s.n, graph.ErrIllegalInput)
	}
	idx, _ := s.NewIdx()
	return idx, nil
}

func (s *DefaultStrategy) RemoveIdx(idx int) error {
	if idx < 0 || idx >= s.n {
		return fmt.Errorf("idstrat: index %d out of range [0,%d): %w", idx, s.n, graph.ErrIllegalInput)
	}
	last := s.n - 1
	if idx != last {
		for _, l := range s.swapListeners {
			l.SwapIndices(idx, last)
		}
	}
	s.n--
	for _, l := range s.addRmListeners {
		l.IndexRemoved(last)
	}
	return nil
}

func (s *DefaultStrategy) IdToIndex(id int) (int, error) {
	if id < 0 || id >= s.n {
		return 0, fmt.Errorf("idstrat: id %d: %w", id, graph.ErrNoSuchId)
	}
	return id, nil
}

func (s *DefaultStrategy) IndexToId(idx int) (int, error) {
	if idx < 0 || idx >= s.n {
		return 0, fmt.Errorf("idstrat: index %d out of range [0,%d): %w", idx, s.n, graph.ErrIllegalInput)
	}
	return idx, nil
}

func (s *DefaultStrategy) AddSwapListener(l graph.SwapListener) {
	s.swapListeners = append(s.swapListeners, l)
}

func (s *DefaultStrategy) RemoveSwapListener(l graph.SwapListener) {
	s.swapListeners = removeSwapListener(s.swapListeners, l)
}

func (s *DefaultStrategy) AddAddRemoveListener(l graph.AddRemoveListener) {
	s.addRmListeners = append(s.addRmListeners, l)
}

func (s *DefaultStrategy) RemoveAddRemoveListener(l graph.AddRemoveListener) {
	s.addRmListeners = removeAddRemoveListener(s.addRmListeners, l)
}

func (s *DefaultStrategy) Clear() { s.n = 0 }
