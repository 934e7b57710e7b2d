package bufutils_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/gralloc/bufutils"
)

func TestAlignUp(t *testing.T) {
	require.Equal(t, uint32(128), bufutils.AlignUp[uint32](100, 32))
	require.Equal(t, uint32(128), bufutils.AlignUp[uint32](128, 32))
	require.Equal(t, 64, bufutils.AlignUp(1, 64))
	require.Equal(t, uint32(0), bufutils.AlignUp[uint32](0, 16))
}

func TestAlignDown(t *testing.T) {
	require.Equal(t, uint32(96), bufutils.AlignDown[uint32](100, 32))
	require.Equal(t, 0, bufutils.AlignDown(63, 64))
}

func TestDivRoundUp(t *testing.T) {
	require.Equal(t, uint32(38), bufutils.DivRoundUp[uint32](75, 2))
	require.Equal(t, uint32(540), bufutils.DivRoundUp[uint32](1080, 2))
	require.Equal(t, uint32(1), bufutils.DivRoundUp[uint32](1, 4))
}

func TestCheckPow2(t *testing.T) {
	require.NoError(t, bufutils.CheckPow2(64, "alignment"))
	err := bufutils.CheckPow2(48, "alignment")
	require.Error(t, err)
	require.True(t, errors.Is(err, bufutils.PowerOfTwoError))
}

func TestCheckPlane(t *testing.T) {
	require.NotPanics(t, func() { bufutils.CheckPlane(1, 2) })
	require.Panics(t, func() { bufutils.CheckPlane(2, 2) })
	require.Panics(t, func() { bufutils.CheckPlane(-1, 2) })
}

func TestDetailedStatistics(t *testing.T) {
	var stats bufutils.DetailedStatistics
	stats.Clear()
	stats.AddBuffer(100)
	stats.AddBuffer(300)
	stats.AddMapping(100)

	var other bufutils.DetailedStatistics
	other.Clear()
	other.AddBuffer(50)

	stats.AddDetailedStatistics(&other)
	require.Equal(t, bufutils.DetailedStatistics{
		Statistics: bufutils.Statistics{
			BufferCount:    3,
			MappingCount:   1,
			AllocatedBytes: 450,
			MappedBytes:    100,
		},
		BufferSizeMin: 50,
		BufferSizeMax: 300,
	}, stats)
}
