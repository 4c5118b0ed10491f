// Package workgroup describes the data-parallel shape a kernel is invoked with.
package workgroup

import "fmt"

// Dimensions is the number of dimensions every Config describes. Lower-dimensional
// kernels leave the unused dimensions at their size-1 defaults.
const Dimensions = 3

// Config is the execution configuration of one kernel invocation
type Config struct {
	Dimensions    uint8
	GlobalOffsets [Dimensions]uint32
	LocalSizes    [Dimensions]uint32 // work-items per group
	NumGroups     [Dimensions]uint32
}

// New builds a fully populated 3-D configuration with all global offsets at 0.
// The optional values are, in order: localSizeY, localSizeZ, numGroupsX,
// numGroupsY, numGroupsZ. Omitted values default to 1. Sizes are not validated;
// the consequences of a zero size are up to the emulator.
func New(localSizeX uint32, more ...uint32) Config {
	if len(more) > 2*Dimensions-1 {
		panic(fmt.Sprintf("workgroup: at most %d sizes after localSizeX, got %d", 2*Dimensions-1, len(more)))
	}
	values := [2 * Dimensions]uint32{localSizeX, 1, 1, 1, 1, 1}
	copy(values[1:], more)

	cfg := Config{Dimensions: Dimensions}
	copy(cfg.LocalSizes[:], values[:Dimensions])
	copy(cfg.NumGroups[:], values[Dimensions:])
	return cfg
}

// Default is the configuration used when a kernel does not specify one:
// a single work-item in a single group
func Default() Config {
	return New(1)
}

// GlobalSize returns the number of work-items along dim
func (c Config) GlobalSize(dim int) uint32 {
	return c.LocalSizes[dim] * c.NumGroups[dim]
}

// TotalWorkItems returns the number of work-items across all dimensions
func (c Config) TotalWorkItems() uint64 {
	total := uint64(1)
	for dim := 0; dim < Dimensions; dim++ {
		total *= uint64(c.LocalSizes[dim]) * uint64(c.NumGroups[dim])
	}
	return total
}

// TotalGroups returns the number of work-groups across all dimensions
func (c Config) TotalGroups() uint64 {
	total := uint64(1)
	for dim := 0; dim < Dimensions; dim++ {
		total *= uint64(c.NumGroups[dim])
	}
	return total
}

func (c Config) String() string {
	return fmt.Sprintf("local=%dx%dx%d groups=%dx%dx%d offset=%d,%d,%d",
		c.LocalSizes[0], c.LocalSizes[1], c.LocalSizes[2],
		c.NumGroups[0], c.NumGroups[1], c.NumGroups[2],
		c.GlobalOffsets[0], c.GlobalOffsets[1], c.GlobalOffsets[2])
}
