package combination_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/gralloc/combination"
	"github.com/vkngwrapper/gralloc/format"
	"github.com/vkngwrapper/gralloc/modifier"
)

var tiledMetadata = combination.Metadata{
	Priority: 2,
	Tiling:   1,
	Modifier: modifier.IntelYTiled,
}

func TestRegistry_AddManyPreservesOrder(t *testing.T) {
	var registry combination.Registry
	registry.AddMany([]format.Format{format.XRGB8888, format.ARGB8888, format.RGB565}, combination.LinearMetadata, combination.UseTextureMask)
	registry.Add(format.NV12, tiledMetadata, combination.UseHWVideoDecoder)

	require.Equal(t, 4, registry.Len())
	require.Equal(t, format.XRGB8888, registry.At(0).Format)
	require.Equal(t, format.ARGB8888, registry.At(1).Format)
	require.Equal(t, format.RGB565, registry.At(2).Format)
	require.Equal(t, format.NV12, registry.At(3).Format)
	require.Equal(t, tiledMetadata, registry.At(3).Metadata)

	var visited []format.Format
	registry.Each(func(combo combination.Combination) bool {
		visited = append(visited, combo.Format)
		return len(visited) < 2
	})
	require.Equal(t, []format.Format{format.XRGB8888, format.ARGB8888}, visited)
}

func TestRegistry_BestMatchNoResult(t *testing.T) {
	var registry combination.Registry
	registry.Add(format.XRGB8888, combination.LinearMetadata, combination.UseTexture)

	_, ok := registry.BestMatch(format.XRGB8888, combination.UseScanout)
	require.False(t, ok)

	_, ok = registry.BestMatch(format.ARGB8888, combination.UseNone)
	require.False(t, ok)

	combo, ok := registry.BestMatch(format.XRGB8888, combination.UseNone)
	require.True(t, ok)
	require.Equal(t, format.XRGB8888, combo.Format)
}

func TestRegistry_BestMatchFirstInsertedWins(t *testing.T) {
	var registry combination.Registry
	registry.Add(format.NV12, combination.LinearMetadata, combination.UseTexture|combination.UseSWMask)
	registry.Add(format.NV12, tiledMetadata, combination.UseTexture|combination.UseSWMask|combination.UseScanout)

	combo, ok := registry.BestMatch(format.NV12, combination.UseTexture)
	require.True(t, ok)
	require.Equal(t, combination.LinearMetadata, combo.Metadata)

	combo, ok = registry.BestMatch(format.NV12, combination.UseTexture|combination.UseScanout)
	require.True(t, ok)
	require.Equal(t, tiledMetadata, combo.Metadata)
}

func TestRegistry_WidenIsNotUpsert(t *testing.T) {
	var registry combination.Registry
	registry.Add(format.XRGB8888, combination.LinearMetadata, combination.UseTexture)
	registry.Add(format.XRGB8888, tiledMetadata, combination.UseTexture)

	registry.Widen(format.ARGB8888, combination.LinearMetadata, combination.UseScanout)
	require.Equal(t, 2, registry.Len())

	// Priority is not part of the match
	registry.Widen(format.XRGB8888, combination.Metadata{Priority: 9, Modifier: modifier.Linear}, combination.UseScanout)
	require.Equal(t, combination.UseTexture|combination.UseScanout, registry.At(0).Usage)
	require.Equal(t, combination.UseTexture, registry.At(1).Usage)
}

func TestRegistry_WidenLinear(t *testing.T) {
	var registry combination.Registry
	registry.AddMany([]format.Format{format.ARGB8888, format.XRGB8888, format.ABGR8888}, combination.LinearMetadata, combination.UseRenderMask)
	registry.WidenLinear()

	for i := 0; i < 2; i++ {
		combo := registry.At(i)
		require.True(t, combo.Supports(combination.UseScanout|combination.UseCursor))
	}
	last := registry.At(2)
	require.False(t, last.Supports(combination.UseScanout))
	require.Equal(t, 3, registry.Len())
}

func TestRegistry_Modifiers(t *testing.T) {
	var registry combination.Registry
	registry.Add(format.XRGB8888, tiledMetadata, combination.UseRendering)
	registry.Add(format.XRGB8888, combination.LinearMetadata, combination.UseRendering|combination.UseSWMask)
	registry.Add(format.XRGB8888, combination.Metadata{Tiling: 4, Modifier: modifier.IntelYTiled}, combination.UseRendering)

	require.Equal(t, []modifier.Modifier{modifier.IntelYTiled, modifier.Linear}, registry.Modifiers(format.XRGB8888, combination.UseRendering))
	require.Equal(t, []modifier.Modifier{modifier.Linear}, registry.Modifiers(format.XRGB8888, combination.UseSWReadOften))
	require.Empty(t, registry.Modifiers(format.NV12, combination.UseNone))
}

func TestRegistry_Validate(t *testing.T) {
	var registry combination.Registry
	registry.Add(format.XRGB8888, combination.LinearMetadata, combination.UseRendering)
	require.NoError(t, registry.Validate())

	registry.Add(format.XRGB8888, combination.Metadata{Modifier: modifier.Invalid}, combination.UseRendering)
	require.Error(t, registry.Validate())
}

func TestRegistry_BuildStatsString(t *testing.T) {
	var registry combination.Registry
	registry.Add(format.XRGB8888, combination.LinearMetadata, combination.UseRendering|combination.UseScanout)

	writer := jwriter.NewWriter()
	registry.BuildStatsString(&writer)
	require.NoError(t, writer.Error())

	var out []map[string]any
	require.NoError(t, json.NewDecoder(bytes.NewReader(writer.Bytes())).Decode(&out))
	require.Len(t, out, 1)
	require.Equal(t, "XRGB8888", out[0]["Format"])
	require.Equal(t, "Linear", out[0]["Modifier"])
	require.Equal(t, float64(1), out[0]["Priority"])
}

func TestResolveFormat(t *testing.T) {
	require.Equal(t, format.NV12, combination.ResolveFormat(format.FlexImplementationDefined, combination.UseCameraWrite))
	require.Equal(t, format.NV12, combination.ResolveFormat(format.FlexImplementationDefined, combination.UseCameraRead|combination.UseTexture))
	require.Equal(t, format.XBGR8888, combination.ResolveFormat(format.FlexImplementationDefined, combination.UseTexture))
	require.Equal(t, format.NV12, combination.ResolveFormat(format.FlexYCbCr420888, combination.UseNone))
	require.Equal(t, format.RGB565, combination.ResolveFormat(format.RGB565, combination.UseCameraWrite))
}

func TestUsageFlagsString(t *testing.T) {
	require.Contains(t, (combination.UseScanout | combination.UseCursor).String(), "UseScanout")
	require.Contains(t, (combination.UseScanout | combination.UseCursor).String(), "UseCursor")
}
