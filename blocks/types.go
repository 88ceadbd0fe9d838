package blocks

// BlockAddress is the zero-based index of the block on the disk.
type BlockAddress uint64

// Hash represents hash.
type Hash uint64
