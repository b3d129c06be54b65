package alloc

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-c3d/internal/binary"
)

// ErrLayout is returned by Validate for a malformed block layout.
var ErrLayout = errors.New("invalid block layout")

// Allocator hands out consecutive block ranges.
type Allocator struct {
	// first is the first block handed out
	first int

	// next is the next free 1-based block
	next int

	// allocations tracks all allocations made
	allocations []Allocation

	stats Stats
}

// Allocation is a contiguous range of blocks.
type Allocation struct {
	Block  int // first 1-based block
	Blocks int // number of blocks reserved
	Bytes  int // bytes of content
	Tag    string
}

// End returns the block following the allocation.
func (a Allocation) End() int {
	return a.Block + a.Blocks
}

// Stats contains allocation statistics.
type Stats struct {
	TotalAllocations int
	TotalBlocks      int
	TotalBytes       int
	PaddingBytes     int // reserved but unused bytes
}

// New creates an allocator whose first allocation starts at block first.
func New(first int) *Allocator {
	return &Allocator{first: first, next: first}
}

// BlocksFor returns the number of blocks needed to hold n bytes.
func BlocksFor(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + binary.BlockSize - 1) / binary.BlockSize
}

// Alloc reserves just enough blocks for n bytes.
func (a *Allocator) Alloc(n int, tag string) Allocation {
	return a.Reserve(0, n, tag)
}

// Reserve reserves max(blocks, BlocksFor(n)) blocks for n bytes.
func (a *Allocator) Reserve(blocks, n int, tag string) Allocation {
	if need := BlocksFor(n); need > blocks {
		blocks = need
	}

	alloc := Allocation{Block: a.next, Blocks: blocks, Bytes: n, Tag: tag}
	a.next += blocks
	a.allocations = append(a.allocations, alloc)

	a.stats.TotalAllocations++
	a.stats.TotalBlocks += blocks
	a.stats.TotalBytes += n
	a.stats.PaddingBytes += blocks*binary.BlockSize - n
	return alloc
}

// Next returns the next free block.
func (a *Allocator) Next() int {
	return a.next
}

// Blocks returns the number of blocks from block 1 to the end of the last
// allocation.
func (a *Allocator) Blocks() int {
	return a.next - 1
}

// Stats returns a copy of the allocation statistics.
func (a *Allocator) Stats() Stats {
	return a.stats
}

// Allocations returns a copy of all allocations made.
func (a *Allocator) Allocations() []Allocation {
	result := make([]Allocation, len(a.allocations))
	copy(result, a.allocations)
	return result
}

// Validate checks that allocations are in bounds, contiguous and large
// enough for their content.
func (a *Allocator) Validate() error {
	expected := a.first
	for _, alloc := range a.allocations {
		if alloc.Block < 1 {
			return errors.Wrapf(ErrLayout, "allocation %q starts at block %d", alloc.Tag, alloc.Block)
		}
		if alloc.Block != expected {
			return errors.Wrapf(ErrLayout, "allocation %q at block %d, expected %d", alloc.Tag, alloc.Block, expected)
		}
		if alloc.Blocks*binary.BlockSize < alloc.Bytes {
			return errors.Wrapf(ErrLayout, "allocation %q: %d blocks cannot hold %d bytes", alloc.Tag, alloc.Blocks, alloc.Bytes)
		}
		expected = alloc.End()
	}
	return nil
}
