package drv

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/gralloc/bufutils"
	"github.com/vkngwrapper/gralloc/combination"
	"github.com/vkngwrapper/gralloc/format"
	"github.com/vkngwrapper/gralloc/internal/utils"
	"github.com/vkngwrapper/gralloc/ledger"
	"github.com/vkngwrapper/gralloc/modifier"
	"golang.org/x/exp/slog"
)

// Driver allocates, imports, maps and destroys buffer objects through a single Backend. It owns the
// combination registry, the handle reference counts and the mapping records for every buffer
// object it produces.
type Driver struct {
	logger         *slog.Logger
	backend        Backend
	createFlags    CreateFlags
	maxTextureSize uint32

	mutex    utils.OptionalMutex
	registry *combination.Registry
	handles  *ledger.HandleTable
	mappings *ledger.MappingCache
	buffers  bufferObjectList
	closed   bool
}

// Backend returns the backend this driver dispatches to
func (d *Driver) Backend() Backend {
	return d.backend
}

// Combinations returns the registry of combinations the backend registered. The registry must
// not be modified while the driver is in use.
func (d *Driver) Combinations() *combination.Registry {
	return d.registry
}

// Handles returns the handle reference counts. The table must only be read while the caller
// guarantees no other driver operation is in progress.
func (d *Driver) Handles() *ledger.HandleTable {
	return d.handles
}

// Mappings returns the live mapping records. The cache must only be read while the caller
// guarantees no other driver operation is in progress.
func (d *Driver) Mappings() *ledger.MappingCache {
	return d.mappings
}

// Close releases the backend. It fails if any buffer object created or imported from this driver
// has not been destroyed.
func (d *Driver) Close() error {
	d.logger.Debug("Driver::Close")

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.closed {
		panic("attempted to close a driver that was already closed")
	}

	if !d.buffers.IsEmpty() {
		return errors.Newf("attempted to close driver with %d live buffer objects", d.buffers.count)
	}

	d.closed = true
	err := d.backend.Close()
	if err != nil {
		return errors.Wrapf(err, "failed to close backend %s", d.backend.Name())
	}

	return nil
}

func (d *Driver) resolveFormatAndUsage(f format.Format, usage combination.UsageFlags) (format.Format, combination.UsageFlags) {
	resolver, ok := d.backend.(FormatResolver)
	if ok {
		return resolver.ResolveFormatAndUsage(f, usage)
	}

	return combination.ResolveFormat(f, usage), usage
}

func (d *Driver) findCombination(f format.Format, usage combination.UsageFlags) (combination.Combination, format.Format, combination.UsageFlags, error) {
	resolvedFormat, resolvedUsage := d.resolveFormatAndUsage(f, usage)

	combo, ok := d.registry.BestMatch(resolvedFormat, resolvedUsage)
	if !ok && resolvedUsage&combination.UseHWVideoEncoder != 0 && f != format.FlexYCbCr420888 {
		// Most formats requested with encoder usage are intermediates that never reach the encoder
		resolvedUsage &^= combination.UseHWVideoEncoder
		combo, ok = d.registry.BestMatch(resolvedFormat, resolvedUsage)
	}

	if !ok && resolvedUsage&combination.UseFrontRendering != 0 {
		resolvedUsage &^= combination.UseFrontRendering
		resolvedUsage |= combination.UseLinear
		combo, ok = d.registry.BestMatch(resolvedFormat, resolvedUsage)
	}

	if !ok {
		return combination.Combination{}, resolvedFormat, resolvedUsage, errors.Wrapf(ErrUnsupportedCombination, "format %s with usage %s", f, usage)
	}

	return combo, resolvedFormat, resolvedUsage, nil
}

func (d *Driver) checkTextureSize(width, height uint32) error {
	if d.maxTextureSize > 0 && (width > d.maxTextureSize || height > d.maxTextureSize) {
		return errors.Wrapf(ErrUnsupportedCombination, "%dx%d exceeds the maximum texture size %d", width, height, d.maxTextureSize)
	}

	return nil
}

// ResolveFormatAndUsage maps flexible formats to a concrete format and adjusts the usage the
// same way Create will, dropping video encoder usage or trading front rendering for a linear
// layout when nothing supports the request as written. ErrUnsupportedCombination is returned if
// no combination matches even after the adjustments.
func (d *Driver) ResolveFormatAndUsage(f format.Format, usage combination.UsageFlags) (format.Format, combination.UsageFlags, error) {
	d.logger.Debug("Driver::ResolveFormatAndUsage", slog.String("Format", f.String()), slog.String("Usage", usage.String()))

	d.mutex.Lock()
	defer d.mutex.Unlock()

	_, resolvedFormat, resolvedUsage, err := d.findCombination(f, usage)
	return resolvedFormat, resolvedUsage, err
}

// IsCombinationSupported returns true if Create would find a combination for a buffer with these
// dimensions, format and usage
func (d *Driver) IsCombinationSupported(width, height uint32, f format.Format, usage combination.UsageFlags) bool {
	d.logger.Debug("Driver::IsCombinationSupported", slog.String("Format", f.String()), slog.String("Usage", usage.String()))

	d.mutex.Lock()
	defer d.mutex.Unlock()

	_, _, _, err := d.findCombination(f, usage)
	if err != nil {
		return false
	}

	return d.checkTextureSize(width, height) == nil
}

// NumPlanesForModifier returns the number of planes a buffer in the provided format and modifier
// occupies. This is only larger than the format's plane count when the backend stores auxiliary
// data, such as compression metadata, in extra planes.
func (d *Driver) NumPlanesForModifier(f format.Format, m modifier.Modifier) int {
	counter, ok := d.backend.(ModifierPlaneCounter)
	if ok {
		return counter.NumPlanesForModifier(f, m)
	}

	return format.NumPlanes(f)
}

func (d *Driver) Validate() error {
	err := d.registry.Validate()
	if err != nil {
		return err
	}

	err = d.handles.Validate()
	if err != nil {
		return err
	}

	err = d.mappings.Validate()
	if err != nil {
		return err
	}

	return d.buffers.Validate()
}

// CalculateStatistics populates the provided statistics with the buffer objects, handles and
// mappings currently owned by this driver
func (d *Driver) CalculateStatistics(stats *bufutils.DetailedStatistics) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	stats.Clear()
	d.buffers.AddDetailedStatistics(stats)
	stats.HandleCount = d.handles.Count()

	seen := make(map[*ledger.VMA]struct{})
	d.mappings.Each(func(mapping *ledger.Mapping) {
		_, ok := seen[mapping.VMA]
		if ok {
			return
		}
		seen[mapping.VMA] = struct{}{}
		stats.AddMapping(int(mapping.VMA.Length))
	})
}

// BuildStatsString returns a json document describing the backend, its combinations, and every
// live buffer object
func (d *Driver) BuildStatsString() string {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	writer := jwriter.NewWriter()
	obj := writer.Object()

	obj.Name("Backend").String(d.backend.Name())
	obj.Name("Handles").Int(d.handles.Count())
	obj.Name("Mappings").Int(d.mappings.Count())

	d.registry.BuildStatsString(obj.Name("Combinations"))
	d.buffers.BuildStatsString(obj.Name("BufferObjects"))

	obj.End()
	return string(writer.Bytes())
}
