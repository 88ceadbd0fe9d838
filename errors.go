package ramdisk

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/outofforest/ramdisk/blocks"
)

var (
	// ErrOutOfRange is matched by every *OutOfRangeError.
	ErrOutOfRange = errors.New("block out of range")

	// ErrInvalidBufferSize is returned if buffer passed to read or write is not exactly one block long.
	ErrInvalidBufferSize = errors.New("invalid buffer size")
)

// Op identifies the disk operation.
type Op int

// Disk operations reported in errors.
const (
	ReadOp Op = iota
	WriteOp
)

func (o Op) String() string {
	switch o {
	case ReadOp:
		return "read"
	case WriteOp:
		return "write"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// OutOfRangeError is returned when block address does not exist on the disk.
type OutOfRangeError struct {
	Op      Op
	Block   blocks.BlockAddress
	NBlocks uint64
}

// MaxBlock returns the highest valid block address. False is returned if disk has no blocks at all.
func (e *OutOfRangeError) MaxBlock() (blocks.BlockAddress, bool) {
	if e.NBlocks == 0 {
		return 0, false
	}
	return blocks.BlockAddress(e.NBlocks - 1), true
}

func (e *OutOfRangeError) Error() string {
	maxBlock, ok := e.MaxBlock()
	if !ok {
		return fmt.Sprintf("block %s out of range: block %d, disk has no blocks", e.Op, e.Block)
	}
	return fmt.Sprintf("block %s out of range: block %d, max valid block %d", e.Op, e.Block, maxBlock)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Must panics if err is not nil. It is for callers treating invalid block address as a programming error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
