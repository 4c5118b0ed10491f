// File: kernel/access.go

package kernel

import "github.com/notargets/emucheck/flags"

// Access represents how a kernel reads and writes an argument
type Access uint8

const (
	// No access
	NoAccess Access = 0
	// Read by the kernel
	Read Access = 1 << (iota - 1)
	// Written by the kernel and read back by the test
	Write
	// Read and written
	ReadWrite = Read | Write
)

// Has checks if every bit of f is set
func (a Access) Has(f Access) bool {
	return flags.Has(a, f)
}

// With returns a with f added
func (a Access) With(f Access) Access {
	return flags.Add(a, f)
}

func (a Access) String() string {
	switch {
	case a.Has(ReadWrite):
		return "inout"
	case a.Has(Write):
		return "out"
	case a.Has(Read):
		return "in"
	default:
		return "none"
	}
}
