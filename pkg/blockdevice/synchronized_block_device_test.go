package blockdevice

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/outofforest/ramdisk"
	"github.com/outofforest/ramdisk/blocks"
)

func TestSynchronizedBlockDevice(t *testing.T) {
	requireT := require.New(t)

	const (
		blockSize  = 64
		nBlocks    = 8
		nWriters   = 4
		nReaders   = 4
		iterations = 200
	)

	bd := NewSynchronizedBlockDevice(ramdisk.New(blockSize, nBlocks))
	requireT.EqualValues(nBlocks, bd.NumBlocks())
	requireT.EqualValues(blockSize, bd.BlockSize())
	requireT.EqualValues(blockSize*nBlocks, bd.TotalStorage())

	var group errgroup.Group
	for w := 0; w < nWriters; w++ {
		group.Go(func() error {
			for i := 0; i < iterations; i++ {
				block := blocks.BlockAddress((w + i) % nBlocks)
				if err := bd.Write(block, bytes.Repeat([]byte{byte(w + 1)}, blockSize)); err != nil {
					return err
				}
				if err := bd.WriteFromString(block, string(bytes.Repeat([]byte{byte(w + 1)}, blockSize))); err != nil {
					return err
				}
			}
			return nil
		})
	}
	for r := 0; r < nReaders; r++ {
		group.Go(func() error {
			buf := make([]byte, blockSize)
			for i := 0; i < iterations; i++ {
				block := blocks.BlockAddress((r + i) % nBlocks)
				if err := bd.Read(block, buf); err != nil {
					return err
				}
				if !bytes.Equal(buf, bytes.Repeat(buf[:1], blockSize)) {
					return errors.Errorf("torn read of block %d: %v", block, buf)
				}
				if _, err := bd.Checksum(block); err != nil {
					return err
				}
			}
			return nil
		})
	}
	requireT.NoError(group.Wait())

	requireT.ErrorIs(bd.Read(nBlocks, make([]byte, blockSize)), ramdisk.ErrOutOfRange)
	requireT.ErrorIs(bd.Write(nBlocks, make([]byte, blockSize)), ramdisk.ErrOutOfRange)
	requireT.ErrorIs(bd.WriteFromString(nBlocks, "abc"), ramdisk.ErrOutOfRange)
}
