package alloc

import (
	"errors"
	"testing"
)

func TestAllocatorLayout(t *testing.T) {
	a := New(1)

	hdr := a.Alloc(512, "header")
	if hdr.Block != 1 || hdr.Blocks != 1 {
		t.Errorf("header: got block %d size %d, want 1/1", hdr.Block, hdr.Blocks)
	}

	params := a.Reserve(3, 700, "parameters")
	if params.Block != 2 || params.Blocks != 3 {
		t.Errorf("parameters: got block %d size %d, want 2/3", params.Block, params.Blocks)
	}

	data := a.Alloc(1025, "data")
	if data.Block != 5 || data.Blocks != 3 {
		t.Errorf("data: got block %d size %d, want 5/3", data.Block, data.Blocks)
	}

	if a.Blocks() != 7 {
		t.Errorf("total blocks: got %d, want 7", a.Blocks())
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestReserveGrows(t *testing.T) {
	a := New(2)

	params := a.Reserve(1, 1500, "parameters")
	if params.Blocks != 3 {
		t.Errorf("got %d blocks, want 3", params.Blocks)
	}
	if a.Next() != 5 {
		t.Errorf("next block: got %d, want 5", a.Next())
	}
}

func TestZeroSize(t *testing.T) {
	a := New(1)
	a.Alloc(512, "header")

	data := a.Alloc(0, "data")
	if data.Block != 2 || data.Blocks != 0 {
		t.Errorf("empty data: got block %d size %d, want 2/0", data.Block, data.Blocks)
	}
	if a.Blocks() != 1 {
		t.Errorf("total blocks: got %d, want 1", a.Blocks())
	}
}

func TestAllocatorStats(t *testing.T) {
	a := New(1)
	a.Alloc(512, "header")
	a.Reserve(2, 100, "parameters")

	stats := a.Stats()
	if stats.TotalAllocations != 2 {
		t.Errorf("TotalAllocations: got %d, want 2", stats.TotalAllocations)
	}
	if stats.TotalBlocks != 3 {
		t.Errorf("TotalBlocks: got %d, want 3", stats.TotalBlocks)
	}
	if stats.PaddingBytes != 1024-100 {
		t.Errorf("PaddingBytes: got %d, want %d", stats.PaddingBytes, 1024-100)
	}

	allocs := a.Allocations()
	if len(allocs) != 2 || allocs[1].Tag != "parameters" {
		t.Errorf("unexpected allocations %+v", allocs)
	}
}

func TestValidateDetectsOverflow(t *testing.T) {
	a := New(1)
	a.allocations = append(a.allocations, Allocation{Block: 1, Blocks: 1, Bytes: 600, Tag: "bad"})

	if err := a.Validate(); !errors.Is(err, ErrLayout) {
		t.Errorf("expected ErrLayout for undersized allocation, got %v", err)
	}
}

func TestValidateDetectsGap(t *testing.T) {
	a := New(1)
	a.Alloc(512, "header")
	a.allocations = append(a.allocations, Allocation{Block: 5, Blocks: 1, Bytes: 10, Tag: "gap"})

	if err := a.Validate(); !errors.Is(err, ErrLayout) {
		t.Errorf("expected ErrLayout for non-contiguous allocation, got %v", err)
	}

	b := New(1)
	b.allocations = append(b.allocations, Allocation{Block: 0, Blocks: 1, Tag: "zero"})
	if err := b.Validate(); !errors.Is(err, ErrLayout) {
		t.Errorf("expected ErrLayout for block 0, got %v", err)
	}
}
