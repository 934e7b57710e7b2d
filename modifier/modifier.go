// Package modifier defines DRM format modifiers and the helpers backends use to pick one out of a
// caller-supplied candidate list.
package modifier

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Modifier is an opaque identifier for a hardware-specific memory layout
type Modifier uint64

// Vendor identifies the owner of the upper byte of a Modifier
type Vendor uint8

const (
	VendorNone     Vendor = 0
	VendorIntel    Vendor = 0x01
	VendorAMD      Vendor = 0x02
	VendorNvidia   Vendor = 0x03
	VendorSamsung  Vendor = 0x04
	VendorQcom     Vendor = 0x05
	VendorVivante  Vendor = 0x06
	VendorBroadcom Vendor = 0x07
	VendorARM      Vendor = 0x08
)

// Code builds a modifier the same way fourcc_mod_code does
func Code(vendor Vendor, value uint64) Modifier {
	return Modifier(uint64(vendor)<<56 | (value & 0x00ffffffffffffff))
}

const (
	// Linear is the "no special layout" modifier: rows of pixels one after another
	Linear Modifier = 0
	// Invalid is the sentinel modifier indicating that no modifier was supplied
	Invalid Modifier = 0x00ffffffffffffff

	IntelXTiled    Modifier = Modifier(uint64(VendorIntel)<<56 | 1)
	IntelYTiled    Modifier = Modifier(uint64(VendorIntel)<<56 | 2)
	IntelYfTiled   Modifier = Modifier(uint64(VendorIntel)<<56 | 3)
	IntelYTiledCCS Modifier = Modifier(uint64(VendorIntel)<<56 | 4)

	BroadcomVC4TTiled Modifier = Modifier(uint64(VendorBroadcom)<<56 | 1)
)

var modifierNames = map[Modifier]string{
	Linear:            "Linear",
	Invalid:           "Invalid",
	IntelXTiled:       "IntelXTiled",
	IntelYTiled:       "IntelYTiled",
	IntelYfTiled:      "IntelYfTiled",
	IntelYTiledCCS:    "IntelYTiledCCS",
	BroadcomVC4TTiled: "BroadcomVC4TTiled",
}

func (m Modifier) Vendor() Vendor {
	return Vendor(uint64(m) >> 56)
}

func (m Modifier) String() string {
	name, ok := modifierNames[m]
	if ok {
		return name
	}

	return fmt.Sprintf("Modifier(0x%016x)", uint64(m))
}

// Pick returns the first modifier in order that is also present in candidates. order must be
// sorted from most to least preferred. If no modifier in order is present, Linear is returned.
func Pick(candidates []Modifier, order []Modifier) Modifier {
	for _, preferred := range order {
		if slices.Contains(candidates, preferred) {
			return preferred
		}
	}

	return Linear
}

// Has returns true if m is present in list
func Has(list []Modifier, m Modifier) bool {
	return slices.Contains(list, m)
}
