package fontface

import "sync"

// runeToBoolMap is a memory-efficient map from rune to bool.
// Uses 2 bits per rune: (checked, hasGlyph).
//
// Each block covers 256 runes (512 bits = 64 bytes) and is allocated only
// when a rune in that range is stored. Icon sets are dense runs of private
// use code points, so a coverage scan touches few blocks.
//
// runeToBoolMap is safe for concurrent use.
type runeToBoolMap struct {
	mu     sync.RWMutex
	blocks map[uint32]*block // keyed by rune >> 8
}

// block holds 256 runes, 2 bits each: bit 0 = checked, bit 1 = hasGlyph.
type block struct {
	bits [8]uint64
}

func newRuneToBoolMap() *runeToBoolMap {
	return &runeToBoolMap{
		blocks: make(map[uint32]*block),
	}
}

// position returns the block key, word index and bit offset of r.
func position(r rune) (blockIdx, wordIdx, bitPos uint32) {
	bitIdx := (uint32(r) & 0xFF) * 2
	return uint32(r) >> 8, bitIdx / 64, bitIdx % 64
}

// get returns (hasGlyph, checked).
// If checked is false, the rune hasn't been stored yet.
func (m *runeToBoolMap) get(r rune) (hasGlyph, checked bool) {
	blockIdx, wordIdx, bitPos := position(r)

	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.blocks[blockIdx]
	if !ok {
		return false, false
	}
	word := b.bits[wordIdx]
	return (word>>(bitPos+1))&1 != 0, (word>>bitPos)&1 != 0
}

// set stores the hasGlyph value for a rune and marks it checked.
func (m *runeToBoolMap) set(r rune, hasGlyph bool) {
	blockIdx, wordIdx, bitPos := position(r)

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.blocks[blockIdx]
	if !ok {
		b = &block{}
		m.blocks[blockIdx] = b
	}
	b.bits[wordIdx] |= 1 << bitPos
	if hasGlyph {
		b.bits[wordIdx] |= 1 << (bitPos + 1)
	} else {
		b.bits[wordIdx] &^= 1 << (bitPos + 1)
	}
}

// clear removes all entries from the map.
func (m *runeToBoolMap) clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blocks = make(map[uint32]*block)
}

// len returns the number of allocated blocks.
func (m *runeToBoolMap) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blocks)
}
