// File: kernel/emulation.go

package kernel

import (
	"fmt"

	"github.com/notargets/emucheck/workgroup"
)

// DefaultMaxCycles bounds the emulated runtime of a kernel
const DefaultMaxCycles uint32 = 1 << 16

// EmulationData is everything needed to invoke one kernel entry point under test.
// Source and Name are forwarded to the compiler/emulator unchanged and are never
// validated here.
type EmulationData struct {
	Source    string // kernel source path
	Name      string // entry point
	Params    []Parameter
	Config    workgroup.Config
	MaxCycles uint32
}

// NewEmulationData builds an EmulationData owning its own copy of params
func NewEmulationData(source, name string, cfg workgroup.Config, maxCycles uint32,
	params ...Parameter) EmulationData {
	owned := make([]Parameter, len(params))
	copy(owned, params)
	return EmulationData{
		Source:    source,
		Name:      name,
		Params:    owned,
		Config:    cfg,
		MaxCycles: maxCycles,
	}
}

// Clone returns a copy that shares no parameter list with d.
// Buffers are immutable, so sharing their storage is safe.
func (d EmulationData) Clone() EmulationData {
	return NewEmulationData(d.Source, d.Name, d.Config, d.MaxCycles, d.Params...)
}

// Param returns parameter i
func (d EmulationData) Param(i int) (Parameter, bool) {
	if i < 0 || i >= len(d.Params) {
		return nil, false
	}
	return d.Params[i], true
}

// BufferAt returns parameter i if it is a buffer
func (d EmulationData) BufferAt(i int) (Buffer, bool) {
	p, ok := d.Param(i)
	if !ok {
		return Buffer{}, false
	}
	b, ok := p.(Buffer)
	return b, ok
}

// ScalarAt returns parameter i if it is a scalar
func (d EmulationData) ScalarAt(i int) (Scalar, bool) {
	p, ok := d.Param(i)
	if !ok {
		return Scalar{}, false
	}
	s, ok := p.(Scalar)
	return s, ok
}

func (d EmulationData) String() string {
	return fmt.Sprintf("%s (%s)", d.Name, d.Source)
}
