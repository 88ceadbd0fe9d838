package ramdisk

import (
	"math"

	"github.com/pkg/errors"

	"github.com/outofforest/ramdisk/blocks"
)

// Disk simulates a block device in memory. It consists of a fixed number of fixed-size blocks, all of them kept in
// one contiguous buffer allocated when the disk is created.
//
// Disk does no locking. Callers sharing it between goroutines must synchronize access on their own.
type Disk struct {
	blockSize uint64
	nBlocks   uint64
	data      []byte
}

// New returns new disk of nBlocks blocks, blockSize bytes each, all of them zeroed.
// It panics if the total capacity does not fit in uint64.
func New(blockSize, nBlocks uint64) *Disk {
	if nBlocks != 0 && blockSize > math.MaxUint64/nBlocks {
		panic(errors.Errorf("disk capacity overflows: %d blocks of %d bytes", nBlocks, blockSize))
	}

	return &Disk{
		blockSize: blockSize,
		nBlocks:   nBlocks,
		data:      make([]byte, blockSize*nBlocks),
	}
}

// NewFromBlocks returns new disk seeded with provided block contents. Each element of contents must be exactly
// blockSize bytes long. The data are copied, so the disk never shares memory with the caller.
func NewFromBlocks(blockSize uint64, contents [][]byte) (*Disk, error) {
	for i, c := range contents {
		if uint64(len(c)) != blockSize {
			return nil, errors.Wrapf(ErrInvalidBufferSize, "block %d is %d bytes, block size is %d",
				i, len(c), blockSize)
		}
	}

	d := New(blockSize, uint64(len(contents)))
	for i, c := range contents {
		copy(d.data[uint64(i)*blockSize:], c)
	}
	return d, nil
}

// NumBlocks returns the number of blocks on the disk.
func (d *Disk) NumBlocks() uint64 {
	return d.nBlocks
}

// BlockSize returns the size of a single block in bytes.
func (d *Disk) BlockSize() uint64 {
	return d.blockSize
}

// TotalStorage returns the capacity of the disk in bytes.
func (d *Disk) TotalStorage() uint64 {
	return d.nBlocks * d.blockSize
}

// Read copies the content of the block into p. p must be exactly one block long.
// On error p is left untouched.
func (d *Disk) Read(block blocks.BlockAddress, p []byte) error {
	b, err := d.block(ReadOp, block)
	if err != nil {
		return err
	}
	if err := d.validateBuffer(p); err != nil {
		return err
	}

	copy(p, b)
	return nil
}

// Write replaces the content of the block with p. p must be exactly one block long.
// On error the disk is left untouched.
func (d *Disk) Write(block blocks.BlockAddress, p []byte) error {
	b, err := d.block(WriteOp, block)
	if err != nil {
		return err
	}
	if err := d.validateBuffer(p); err != nil {
		return err
	}

	copy(b, p)
	return nil
}

// WriteFromString copies text to the beginning of the block. Text longer than the block is truncated.
// If text is shorter, the remaining bytes of the block keep their previous values.
func (d *Disk) WriteFromString(block blocks.BlockAddress, text string) error {
	b, err := d.block(WriteOp, block)
	if err != nil {
		return err
	}

	copy(b, text)
	return nil
}

// Checksum returns checksum of the current block content.
func (d *Disk) Checksum(block blocks.BlockAddress) (blocks.Hash, error) {
	b, err := d.block(ReadOp, block)
	if err != nil {
		return 0, err
	}
	return blocks.Checksum(b), nil
}

func (d *Disk) block(op Op, block blocks.BlockAddress) ([]byte, error) {
	if uint64(block) >= d.nBlocks {
		return nil, errors.WithStack(&OutOfRangeError{
			Op:      op,
			Block:   block,
			NBlocks: d.nBlocks,
		})
	}

	offset := uint64(block) * d.blockSize
	return d.data[offset : offset+d.blockSize : offset+d.blockSize], nil
}

func (d *Disk) validateBuffer(p []byte) error {
	if uint64(len(p)) != d.blockSize {
		return errors.Wrapf(ErrInvalidBufferSize, "buffer is %d bytes, block size is %d", len(p), d.blockSize)
	}
	return nil
}
