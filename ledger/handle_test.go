package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/gralloc/ledger"
)

func TestHandleTable_IncrementDecrement(t *testing.T) {
	table := ledger.NewHandleTable()

	require.Equal(t, uint32(0), table.Get(7))
	require.Equal(t, uint32(1), table.Increment(7))
	require.Equal(t, uint32(2), table.Increment(7))
	require.Equal(t, uint32(3), table.Increment(7))

	require.Equal(t, uint32(2), table.Decrement(7))
	require.Equal(t, uint32(1), table.Decrement(7))
	require.Equal(t, uint32(1), table.Get(7))
	require.Equal(t, 1, table.Count())
	require.NoError(t, table.Validate())
}

func TestHandleTable_DecrementSaturates(t *testing.T) {
	table := ledger.NewHandleTable()

	require.Equal(t, uint32(0), table.Decrement(3))
	require.Equal(t, 0, table.Count())

	table.Increment(3)
	require.Equal(t, uint32(0), table.Decrement(3))
	require.Equal(t, uint32(0), table.Decrement(3))
	require.Equal(t, uint32(0), table.Get(3))
	require.Equal(t, 0, table.Count())

	require.Equal(t, uint32(1), table.Increment(3))
}

func TestHandleTable_IndependentHandles(t *testing.T) {
	table := ledger.NewHandleTable()

	table.Increment(1)
	table.Increment(2)
	table.Increment(2)

	require.Equal(t, uint32(0), table.Decrement(1))
	require.Equal(t, uint32(2), table.Get(2))
	require.Equal(t, 1, table.Count())
}
