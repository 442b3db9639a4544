package idstrat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/idstrat"
)

func TestDefaultStrategy_GrowAndSwapRemove(t *testing.T) {
	s := idstrat.NewDefaultStrategy()
	for i := 0; i < 5; i++ {
		id, idx := s.NewIdx()
		require.Equal(t, i, id)
		require.Equal(t, i, idx)
	}
	require.Equal(t, 5, s.Size())

	var swaps [][2]int
	s.AddSwapListener(graph.SwapListenerFunc(func(i, j int) {
		swaps = append(swaps, [2]int{i, j})
	}))

	require.NoError(t, s.RemoveIdx(2))
	require.Equal(t, [][2]int{{2, 4}}, swaps)
	require.Equal(t, 4, s.Size())

	// removing the last index never swaps.
	swaps = nil
	require.NoError(t, s.RemoveIdx(3))
	require.Empty(t, swaps)
	require.Equal(t, 3, s.Size())
}

func TestDefaultStrategy_OutOfRange(t *testing.T) {
	s := idstrat.NewDefaultStrategy()
	s.NewIdx()
	_, err := s.IndexToId(5)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
	require.Error(t, s.RemoveIdx(5))
}

func TestMappedStrategy_IdsSurviveSwap(t *testing.T) {
	s := idstrat.NewMappedStrategy[string](nil)
	for _, id := range []string{"a", "b", "c", "d"} {
		_, err := s.NewIdxWith(id)
		require.NoError(t, err)
	}

	idxB, err := s.IdToIndex("b")
	require.NoError(t, err)
	require.Equal(t, 1, idxB)

	require.NoError(t, s.RemoveIdx(0)) // swaps "d" into slot 0

	idxD, err := s.IdToIndex("d")
	require.NoError(t, err)
	require.Equal(t, 0, idxD)

	gotID, err := s.IndexToId(0)
	require.NoError(t, err)
	require.Equal(t, "d", gotID)

	_, err = s.IdToIndex("a")
	require.True(t, errors.Is(err, graph.ErrNoSuchId))
}

func TestMappedStrategy_DuplicateId(t *testing.T) {
	s := idstrat.NewMappedStrategy[string](nil)
	_, err := s.NewIdxWith("x")
	require.NoError(t, err)
	_, err = s.NewIdxWith("x")
	require.ErrorIs(t, err, graph.ErrDuplicateId)
}

func TestMappedStrategy_Generated(t *testing.T) {
	next := 0
	s := idstrat.NewMappedStrategy[int](func() int {
		next++
		return next
	})
	id, idx := s.NewIdx()
	require.Equal(t, 1, id)
	require.Equal(t, 0, idx)
}

func TestListenerRegistrationOrderIsInvocationOrder(t *testing.T) {
	s := idstrat.NewDefaultStrategy()
	for i := 0; i < 3; i++ {
		s.NewIdx()
	}
	var order []int
	s.AddSwapListener(graph.SwapListenerFunc(func(i, j int) { order = append(order, 1) }))
	s.AddSwapListener(graph.SwapListenerFunc(func(i, j int) { order = append(order, 2) }))
	require.NoError(t, s.RemoveIdx(0))
	require.Equal(t, []int{1, 2}, order)
}
