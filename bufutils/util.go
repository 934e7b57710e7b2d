package bufutils

import (
	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Number is any unsigned or signed integer type that layout math is performed on
type Number interface {
	constraints.Integer
}

func CheckPow2[T Number](number T, name string) error {
	if number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// AlignUp rounds value up to the next multiple of alignment. alignment must be a power of two.
func AlignUp[T Number](value T, alignment T) T {
	DebugCheckPow2(alignment, "alignment")
	return (value + alignment - 1) & ^(alignment - 1)
}

// AlignDown rounds value down to the previous multiple of alignment. alignment must be a power of two.
func AlignDown[T Number](value T, alignment T) T {
	DebugCheckPow2(alignment, "alignment")
	return value & ^(alignment - 1)
}

// DivRoundUp divides value by divisor, rounding any remainder up
func DivRoundUp[T Number](value T, divisor T) T {
	return (value + divisor - 1) / divisor
}

// CheckPlane panics with PlaneIndexError if plane is not within [0, planeCount)
func CheckPlane(plane int, planeCount int) {
	if plane < 0 || plane >= planeCount {
		panic(cerrors.Wrapf(PlaneIndexError, "plane %d requested from a layout with %d planes", plane, planeCount))
	}
}
