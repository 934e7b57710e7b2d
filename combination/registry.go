package combination

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/gralloc/format"
	"github.com/vkngwrapper/gralloc/modifier"
)

// Registry is the ordered list of combinations a backend supports. Combinations are appended
// while the backend initializes and may later have usage bits added, but are never removed,
// narrowed or reordered. Insertion order is the tie-break between otherwise equal matches.
//
// Registry is not safe for concurrent use.
type Registry struct {
	combos []Combination
}

// Add appends a single combination
func (r *Registry) Add(f format.Format, metadata Metadata, usage UsageFlags) {
	r.combos = append(r.combos, Combination{
		Format:   f,
		Metadata: metadata,
		Usage:    usage,
	})
}

// AddMany appends one combination per format, in the order provided
func (r *Registry) AddMany(formats []format.Format, metadata Metadata, usage UsageFlags) {
	for _, f := range formats {
		r.Add(f, metadata, usage)
	}
}

// Widen adds usage to every existing combination for the format whose tiling and modifier match
// metadata. If there is no such combination, nothing happens: this never creates a combination.
func (r *Registry) Widen(f format.Format, metadata Metadata, usage UsageFlags) {
	for i := range r.combos {
		if r.combos[i].matchesVariant(f, &metadata) {
			r.combos[i].Usage |= usage
		}
	}
}

// WidenLinear marks linear XRGB8888 and ARGB8888 as usable for scanout and cursors, which every
// display controller supports
func (r *Registry) WidenLinear() {
	r.Widen(format.XRGB8888, LinearMetadata, UseCursor|UseScanout)
	r.Widen(format.ARGB8888, LinearMetadata, UseCursor|UseScanout)
}

// BestMatch returns the earliest-added combination for the format that supports every bit in
// usage. The boolean return is false if no combination qualifies.
func (r *Registry) BestMatch(f format.Format, usage UsageFlags) (Combination, bool) {
	for i := range r.combos {
		if r.combos[i].Format == f && r.combos[i].Supports(usage) {
			return r.combos[i], true
		}
	}

	return Combination{}, false
}

// Modifiers lists the modifiers of every combination for the format that supports usage, in
// registry order
func (r *Registry) Modifiers(f format.Format, usage UsageFlags) []modifier.Modifier {
	var modifiers []modifier.Modifier
	for i := range r.combos {
		if r.combos[i].Format == f && r.combos[i].Supports(usage) && !modifier.Has(modifiers, r.combos[i].Metadata.Modifier) {
			modifiers = append(modifiers, r.combos[i].Metadata.Modifier)
		}
	}

	return modifiers
}

func (r *Registry) Len() int { return len(r.combos) }

func (r *Registry) At(index int) Combination {
	return r.combos[index]
}

// Each calls the provided callback once per combination in registry order, stopping early if the
// callback returns false
func (r *Registry) Each(visit func(combo Combination) bool) {
	for _, combo := range r.combos {
		if !visit(combo) {
			return
		}
	}
}

// Validate verifies that no combination uses the Invalid modifier sentinel
func (r *Registry) Validate() error {
	for i := range r.combos {
		if r.combos[i].Metadata.Modifier == modifier.Invalid {
			return errors.Newf("combination %d (%s) carries the invalid modifier", i, r.combos[i].Format)
		}
	}

	return nil
}

// BuildStatsString writes every combination to the provided writer as a json array
func (r *Registry) BuildStatsString(writer *jwriter.Writer) {
	s := writer.Array()
	defer s.End()

	for i := range r.combos {
		o := s.Object()
		r.combos[i].printParameters(&o)
		o.End()
	}
}
