package modifier_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/gralloc/modifier"
)

func TestPickHighestPriority(t *testing.T) {
	a, b, c := modifier.IntelXTiled, modifier.IntelYTiled, modifier.IntelYfTiled

	require.Equal(t, c, modifier.Pick([]modifier.Modifier{a, b, c}, []modifier.Modifier{c, a}))
	require.Equal(t, a, modifier.Pick([]modifier.Modifier{a, b, c}, []modifier.Modifier{a, c}))
}

func TestPickFallsBackToLinear(t *testing.T) {
	a, b, c := modifier.IntelXTiled, modifier.IntelYTiled, modifier.IntelYfTiled

	require.Equal(t, modifier.Linear, modifier.Pick([]modifier.Modifier{a, b}, []modifier.Modifier{c}))
	require.Equal(t, modifier.Linear, modifier.Pick(nil, []modifier.Modifier{c}))
	require.Equal(t, modifier.Linear, modifier.Pick([]modifier.Modifier{a}, nil))
}

func TestHas(t *testing.T) {
	list := []modifier.Modifier{modifier.Linear, modifier.IntelYTiled}

	require.True(t, modifier.Has(list, modifier.Linear))
	require.True(t, modifier.Has(list, modifier.IntelYTiled))
	require.False(t, modifier.Has(list, modifier.IntelXTiled))
	require.False(t, modifier.Has(nil, modifier.Linear))
}

func TestCode(t *testing.T) {
	require.Equal(t, modifier.IntelYTiled, modifier.Code(modifier.VendorIntel, 2))
	require.Equal(t, modifier.VendorBroadcom, modifier.BroadcomVC4TTiled.Vendor())
	require.Equal(t, "IntelXTiled", modifier.IntelXTiled.String())
	require.Equal(t, "Modifier(0x0100000000000063)", modifier.Code(modifier.VendorIntel, 0x63).String())
}
