package blockdevice

import (
	"sync"

	"github.com/outofforest/ramdisk/blocks"
)

type synchronizedBlockDevice struct {
	lock sync.RWMutex
	base BlockDevice
}

// NewSynchronizedBlockDevice is a decorator for BlockDevice that
// permits many concurrent readers or a single writer at a time. The
// wrapped device must not be accessed directly afterwards.
func NewSynchronizedBlockDevice(base BlockDevice) BlockDevice {
	return &synchronizedBlockDevice{
		base: base,
	}
}

func (bd *synchronizedBlockDevice) NumBlocks() uint64 {
	return bd.base.NumBlocks()
}

func (bd *synchronizedBlockDevice) BlockSize() uint64 {
	return bd.base.BlockSize()
}

func (bd *synchronizedBlockDevice) TotalStorage() uint64 {
	return bd.base.TotalStorage()
}

func (bd *synchronizedBlockDevice) Read(block blocks.BlockAddress, p []byte) error {
	bd.lock.RLock()
	defer bd.lock.RUnlock()

	return bd.base.Read(block, p)
}

func (bd *synchronizedBlockDevice) Checksum(block blocks.BlockAddress) (blocks.Hash, error) {
	bd.lock.RLock()
	defer bd.lock.RUnlock()

	return bd.base.Checksum(block)
}

func (bd *synchronizedBlockDevice) Write(block blocks.BlockAddress, p []byte) error {
	bd.lock.Lock()
	defer bd.lock.Unlock()

	return bd.base.Write(block, p)
}

func (bd *synchronizedBlockDevice) WriteFromString(block blocks.BlockAddress, text string) error {
	bd.lock.Lock()
	defer bd.lock.Unlock()

	return bd.base.WriteFromString(block, text)
}
