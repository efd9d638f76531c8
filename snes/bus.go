package snes

import "go.uber.org/zap"

// busSize is the full 24-bit flat address space: 16 MiB, per spec.md
// §3's "Flat address space of 16 MiB addressed by 24-bit values."
const busSize = 1 << 24

// Bus is the 24-bit address space the CPU drives. Unlike the teacher's
// region-switched SysBus (NES's 16-bit map of distinct RAM/PPU/APU/
// cartridge windows), spec.md §4.2 only asks for a flat byte array with
// "whatever was last written is read back" semantics and no error
// signalling on unmapped access — so Bus here is a single backing
// slice rather than a dispatch table. ROM mapping and work RAM both
// simply become writes into it.
type Bus struct {
	mem []byte
	log *zap.Logger
}

// NewBus returns an empty 16 MiB bus.
func NewBus(log *zap.Logger) *Bus {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bus{mem: make([]byte, busSize), log: log}
}

// addr24 folds a bank byte and a 16-bit intra-bank address into a flat
// offset into mem.
func addr24(bank byte, addr uint16) uint32 {
	return uint32(bank)<<16 | uint32(addr)
}

// Read8 is a pure read with no side effects, per spec.md §4.2.
func (b *Bus) Read8(bank byte, addr uint16) byte {
	return b.mem[addr24(bank, addr)]
}

// Write8 stores a byte. Reads of the same address afterwards observe
// it; there is no read-only enforcement at this layer, matching
// spec.md's "writes to read-only regions may be silently accepted."
func (b *Bus) Write8(bank byte, addr uint16, v byte) {
	b.mem[addr24(bank, addr)] = v
}

// Read16 reads a little-endian word at the flat 24-bit address formed
// by bank/addr, with the high byte at the next flat offset — so a word
// read at addr 0xFFFF carries into bank+1 rather than wrapping back to
// addr 0x0000 of the same bank. spec.md §8 scenario 1 pins exactly this
// behaviour (DB=0x12, effective address 0x12FFFF, high byte read from
// 0x130000).
func (b *Bus) Read16(bank byte, addr uint16) uint16 {
	base := addr24(bank, addr)
	lo := b.mem[base]
	hi := b.mem[(base+1)%busSize]
	return uint16(lo) | uint16(hi)<<8
}

// Write16 stores a little-endian word, symmetric with Read16.
func (b *Bus) Write16(bank byte, addr uint16, v uint16) {
	base := addr24(bank, addr)
	b.mem[base] = byte(v)
	b.mem[(base+1)%busSize] = byte(v >> 8)
}

// ReadWide zero-extends a single byte read to 32 bits, per spec.md
// §4.2's read_wide. The CPU's own fetch path does not call it; fetch
// widens Read8/Read16 results to uint32 itself.
func (b *Bus) ReadWide(bank byte, addr uint16) uint32 {
	return uint32(b.Read8(bank, addr))
}
