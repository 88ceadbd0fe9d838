package blockdevice

import (
	"github.com/outofforest/ramdisk"
	"github.com/outofforest/ramdisk/blocks"
)

var _ BlockDevice = &ramdisk.Disk{}

// BlockDevice is the interface of fixed-capacity storage addressed in whole blocks.
type BlockDevice interface {
	NumBlocks() uint64
	BlockSize() uint64
	TotalStorage() uint64
	Read(block blocks.BlockAddress, p []byte) error
	Write(block blocks.BlockAddress, p []byte) error
	WriteFromString(block blocks.BlockAddress, text string) error
	Checksum(block blocks.BlockAddress) (blocks.Hash, error)
}
