package idstrat

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
)

// MappedStrategy draws ids from an arbitrary comparable type and keeps two
// directional tables (id->index, index->id) in sync across add/remove. It
// is the backing strategy for idgraph.Graph[V], whose vertex and edge ids
// are user-chosen rather than dense integers.
type MappedStrategy[ID comparable] struct {
	idToIdx        map[ID]int
	idxToId        []ID
	nextGenerated  func() ID
	swapListeners  []graph.SwapListener
	addRmListeners []graph.AddRemoveListener
}

// NewMappedStrategy returns an empty mapped strategy. genID, if non-nil, is
// used by NewIdx to mint a fresh id automatically; callers that only ever
// supply ids explicitly via NewIdxWith may pass nil.
func NewMappedStrategy[ID comparable](genID func() ID) *MappedStrategy[ID] {
	return &MappedStrategy[ID]{
		idToIdx:       make(map[ID]int),
		nextGenerated: genID,
	}
}

func (s *MappedStrategy[ID]) Size() int { return len(s.idxToId) }

func (s *MappedStrategy[ID]) NewIdx() (ID, int) {
	if s.nextGenerated == nil {
		var zero ID
		return zero, -1
	}
	id := s.nextGenerated()
	for {
		if _, exists := s.idToIdx[id]; !exists {
			break
		}
		id = s.nextGenerated()
	}
	idx, _ := s.NewIdxWith(id)
	return id, idx
}

func (s *MappedStrategy[ID]) NewIdxWith(id ID) (int, error) {
	if _, exists := s.idToIdx[id]; exists {
		return 0, fmt.Errorf("idstrat: id %v already registered: %w", id, graph.ErrDuplicateId)
	}
	idx := len(s.idxToId)
	s.idToIdx[id] = idx
	s.idxToId = append(s.idxToId, id)
	for _, l := range s.addRmListeners {
		l.IndexAdded(idx)
	}
	return idx, nil
}

func (s *MappedStrategy[ID]) RemoveIdx(idx int) error {
	n := len(s.idxToId)
	if idx < 0 || idx >= n {
		return fmt.Errorf("idstrat: index %d out of range [0,%d): %w", idx, n, graph.ErrIllegalInput)
	}
	last := n - 1
	removedID := s.idxToId[idx]

	if idx != last {
		for _, l := range s.swapListeners {
			l.SwapIndices(idx, last)
		}
		lastID := s.idxToId[last]
		s.idxToId[idx] = lastID
		s.idToIdx[lastID] = idx
	}

	s.idxToId = s.idxToId[:last]
	delete(s.idToIdx, removedID)

	for _, l := range s.addRmListeners {
		l.IndexRemoved(last)
	}
	return nil
}

func (s *MappedStrategy[ID]) IdToIndex(id ID) (int, error) {
	idx, ok := s.idToIdx[id]
	if !ok {
		return 0, fmt.Errorf("idstrat: id %v: %w", id, graph.ErrNoSuchId)
	}
	return idx, nil
}

func (s *MappedStrategy[ID]) IndexToId(idx int) (ID, error) {
	if idx < 0 || idx >= len(s.idxToId) {
		var zero ID
		return zero, fmt.Errorf("idstrat: index %d out of range [0,%d): %w", idx, len(s.idxToId), graph.ErrIllegalInput)
	}
	return s.idxToId[idx], nil
}

func (s *MappedStrategy[ID]) AddSwapListener(l graph.SwapListener) {
	s.swapListeners = append(s.swapListeners, l)
}

func (s *MappedStrategy[ID]) RemoveSwapListener(l graph.SwapListener) {
	s.swapListeners = removeSwapListener(s.swapListeners, l)
}

func (s *MappedStrategy[ID]) AddAddRemoveListener(l graph.AddRemoveListener) {
	s.addRmListeners = append(s.addRmListeners, l)
}

func (s *MappedStrategy[ID]) RemoveAddRemoveListener(l graph.AddRemoveListener) {
	s.addRmListeners = removeAddRemoveListener(s.addRmListeners, l)
}

func (s *MappedStrategy[ID]) Clear() {
	s.idToIdx = make(map[ID]int)
	s.idxToId = nil
}
