package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type perm uint8

const (
	read perm = 1 << iota
	write
	exec
)

func TestFlagOperations(t *testing.T) {
	f := Add(read, write)
	assert.True(t, Has(f, read))
	assert.True(t, Has(f, write))
	assert.True(t, Has(f, read|write))
	assert.False(t, Has(f, exec))
	assert.False(t, Has(f, read|exec), "all bits of the flag must be present")

	f = Remove(f, read)
	assert.Equal(t, write, f)
	assert.Equal(t, write, Remove(f, exec), "removing an unset flag is a no-op")

	assert.Equal(t, write, Intersect(read|write, write|exec))
	assert.Equal(t, read|write|exec, Combine(read|write, exec))
	assert.True(t, Has(perm(0), perm(0)))
}

func TestFlagWidths(t *testing.T) {
	assert.Equal(t, uint64(1)<<63|1, Add(uint64(1), uint64(1)<<63))
	assert.Equal(t, uint16(0xff00), Remove(uint16(0xffff), uint16(0x00ff)))
}
