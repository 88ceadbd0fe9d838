package ramdisk

const (
	// DefaultBlockSize is the block size used by NewDefault.
	DefaultBlockSize = 512

	// DefaultNBlocks is the number of blocks used by NewDefault.
	DefaultNBlocks = 2048
)

// NewDefault returns new disk of DefaultNBlocks blocks, DefaultBlockSize bytes each.
func NewDefault() *Disk {
	return New(DefaultBlockSize, DefaultNBlocks)
}
