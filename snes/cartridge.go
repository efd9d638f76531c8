package snes

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// MapMode is the cartridge's declared memory model, read from the
// header byte at offset 0x7FD5. Only LoRom is fully mapped by this
// core (spec.md §4.3); the others are recognised so header parsing
// doesn't fail on a HiROM/ExHiROM image, but map to nothing.
type MapMode byte

// Recognised map-mode byte values, ported from the original source's
// MapMode enum (rom.rs) — spec.md §6 lists the same seven values.
const (
	MapLoRom2_68MHz   MapMode = 0x20
	MapHiRom2_68MHz   MapMode = 0x21
	MapSA1            MapMode = 0x23
	MapExHiRom2_68MHz MapMode = 0x25
	MapLoRom3_58MHz   MapMode = 0x30
	MapHiRom3_58MHz   MapMode = 0x31
	MapExHiRom3_58MHz MapMode = 0x35
)

func (m MapMode) String() string {
	switch m {
	case MapLoRom2_68MHz:
		return "LoROM (2.68MHz)"
	case MapHiRom2_68MHz:
		return "HiROM (2.68MHz)"
	case MapSA1:
		return "SA-1"
	case MapExHiRom2_68MHz:
		return "ExHiROM (2.68MHz)"
	case MapLoRom3_58MHz:
		return "LoROM (3.58MHz)"
	case MapHiRom3_58MHz:
		return "HiROM (3.58MHz)"
	case MapExHiRom3_58MHz:
		return "ExHiROM (3.58MHz)"
	default:
		return fmt.Sprintf("MapMode(0x%02X)", byte(m))
	}
}

// isLoRom reports whether m is one of the two LoROM variants; only
// these are actually mapped onto the bus.
func (m MapMode) isLoRom() bool {
	return m == MapLoRom2_68MHz || m == MapLoRom3_58MHz
}

// ChipsetType is the cartridge coprocessor/RAM/battery combination
// declared at header offset 0x7FD6.
type ChipsetType byte

const (
	ChipsetROM              ChipsetType = 0x00
	ChipsetROMRAM           ChipsetType = 0x01
	ChipsetROMRAMBattery    ChipsetType = 0x02
	ChipsetROMSA1           ChipsetType = 0x33
	ChipsetROMSA1RAM        ChipsetType = 0x34
	ChipsetROMSA1RAMBattery ChipsetType = 0x35
	ChipsetROMSA1Battery    ChipsetType = 0x36
)

func (c ChipsetType) String() string {
	switch c {
	case ChipsetROM:
		return "ROM"
	case ChipsetROMRAM:
		return "ROM+RAM"
	case ChipsetROMRAMBattery:
		return "ROM+RAM+Battery"
	case ChipsetROMSA1:
		return "ROM+SA-1"
	case ChipsetROMSA1RAM:
		return "ROM+SA-1+RAM"
	case ChipsetROMSA1RAMBattery:
		return "ROM+SA-1+RAM+Battery"
	case ChipsetROMSA1Battery:
		return "ROM+SA-1+Battery"
	default:
		return fmt.Sprintf("ChipsetType(0x%02X)", byte(c))
	}
}

// Region is the header's country/region byte at offset 0x7FD9.
type Region byte

const (
	RegionJapan Region = 0x00
	RegionUSA   Region = 0x01
	RegionEU    Region = 0x02
)

func (r Region) String() string {
	switch r {
	case RegionJapan:
		return "Japan"
	case RegionUSA:
		return "USA"
	case RegionEU:
		return "Europe"
	default:
		return fmt.Sprintf("Region(0x%02X)", byte(r))
	}
}

// Header offsets within the first 32 KiB bank, after any 512-byte
// legacy pre-header has been stripped. Matches spec.md §6 exactly.
const (
	headerTitleOffset    = 0x7FC0
	headerTitleLen       = 20
	headerMapModeOffset  = 0x7FD5
	headerChipsetOffset  = 0x7FD6
	headerROMSizeOffset  = 0x7FD7
	headerRAMSizeOffset  = 0x7FD8
	headerRegionOffset   = 0x7FD9
	headerMinLength      = headerRegionOffset + 1
	fastROMBit           = 0x10
	legacyPreHeaderBytes = 512
)

// Sentinel errors for the loader's failure modes, per spec.md §7.
var (
	ErrShortROM     = errors.New("snes: rom image shorter than header region")
	ErrInvalidTitle = errors.New("snes: rom title is not valid utf-8")
	ErrInvalidMode  = errors.New("snes: unrecognised map-mode byte")
	ErrInvalidChip  = errors.New("snes: unrecognised chipset byte")
	ErrInvalidRegio = errors.New("snes: unrecognised region byte")
)

// ROM is the immutable descriptor produced by loading a cartridge
// image, plus its raw (pre-header-stripped) bytes. Fields beyond what
// spec.md's data model names (RealROMSize/RealRAMSize/FastROM/String)
// are carried forward from the original source per SPEC_FULL.md's
// supplemented-features section.
type ROM struct {
	Headered    bool
	GameTitle   string
	FastROM     bool
	MapMode     MapMode
	Chipset     ChipsetType
	ROMSize     uint32
	RealROMSize byte
	RAMSize     uint32
	RealRAMSize byte
	Region      Region
	Data        []byte
}

func (r *ROM) String() string {
	return fmt.Sprintf(
		"(game_title: %s, map_mode: %s, chipset: %s, fast_rom: %t, rom_size: %d, ram_size: %d, region: %s)",
		r.GameTitle, r.MapMode, r.Chipset, r.FastROM, r.ROMSize, r.RAMSize, r.Region,
	)
}

// LoadROMFile reads path and parses it into a ROM descriptor.
func LoadROMFile(path string, log *zap.Logger) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snes: reading rom file: %w", err)
	}
	return LoadROM(data, log)
}

// LoadROM parses raw cartridge bytes into a ROM descriptor. Unlike the
// original source's rom::open, which computes the "headered" flag but
// never actually removes the 512-byte legacy pre-header before reading
// the fixed header offsets, this strips it first — spec.md §4.3
// explicitly requires the strip.
func LoadROM(raw []byte, log *zap.Logger) (*ROM, error) {
	if log == nil {
		log = zap.NewNop()
	}

	headered := len(raw)%1024 == legacyPreHeaderBytes
	data := raw
	if headered {
		data = raw[legacyPreHeaderBytes:]
	}

	if len(data) < headerMinLength {
		return nil, ErrShortROM
	}

	titleBytes := data[headerTitleOffset : headerTitleOffset+headerTitleLen]
	if !utf8.Valid(titleBytes) {
		return nil, ErrInvalidTitle
	}
	title := strings.TrimRight(string(titleBytes), " \x00")

	mapByte := data[headerMapModeOffset]
	mode := MapMode(mapByte)
	switch mode {
	case MapLoRom2_68MHz, MapHiRom2_68MHz, MapSA1, MapExHiRom2_68MHz,
		MapLoRom3_58MHz, MapHiRom3_58MHz, MapExHiRom3_58MHz:
	default:
		return nil, fmt.Errorf("%w: 0x%02X", ErrInvalidMode, mapByte)
	}

	chipByte := data[headerChipsetOffset]
	chipset := ChipsetType(chipByte)
	switch chipset {
	case ChipsetROM, ChipsetROMRAM, ChipsetROMRAMBattery,
		ChipsetROMSA1, ChipsetROMSA1RAM, ChipsetROMSA1RAMBattery, ChipsetROMSA1Battery:
	default:
		return nil, fmt.Errorf("%w: 0x%02X", ErrInvalidChip, chipByte)
	}

	regionByte := data[headerRegionOffset]
	region := Region(regionByte)
	switch region {
	case RegionJapan, RegionUSA, RegionEU:
	default:
		return nil, fmt.Errorf("%w: 0x%02X", ErrInvalidRegio, regionByte)
	}

	realROMSize := data[headerROMSizeOffset]
	realRAMSize := data[headerRAMSizeOffset]

	rom := &ROM{
		Headered:    headered,
		GameTitle:   title,
		FastROM:     mapByte&fastROMBit != 0,
		MapMode:     mode,
		Chipset:     chipset,
		ROMSize:     1 << realROMSize,
		RealROMSize: realROMSize,
		RAMSize:     1 << realRAMSize,
		RealRAMSize: realRAMSize,
		Region:      region,
		Data:        data,
	}

	log.Info("loaded rom", zap.String("rom", rom.String()), zap.Int("bytes", len(data)))
	return rom, nil
}

// chunkSize is the LoROM mirroring granularity: 32 KiB, per spec.md
// §4.3.
const chunkSize = 0x8000

// loROMBaseAddress is the intra-bank offset each 32 KiB chunk is
// mirrored at (banks map their upper half, 0x8000-0xFFFF, to ROM).
const loROMBaseAddress = 0x8000

// reservedBank is the first bank index reserved for work RAM in the
// low mirror range; chunks at or beyond this bank only receive the
// high mirror write.
const reservedBank = 0x7E

// highMirrorOffset is added to the bank index for the second,
// always-performed mirror write.
const highMirrorOffset = 0x80

// MapTo copies r's data onto bus under the LoROM mapping described in
// spec.md §4.3. Non-LoROM map modes are recognised (LoadROM above
// already validated the byte) but are not mapped onto the bus — per
// spec.md, "other map modes are recognised at parse time but not
// mapped."
func (r *ROM) MapTo(bus *Bus, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if !r.MapMode.isLoRom() {
		log.Info("rom map mode is not loROM, skipping bus mapping", zap.String("mode", r.MapMode.String()))
		return nil
	}

	var counter, addrCounter uint32
	bank := byte(0)

	for int(counter) < len(r.Data) {
		log.Debug("loROM chunk start",
			zap.Uint8("bank", bank),
			zap.Uint32("addr", loROMBaseAddress+addrCounter),
			zap.Uint32("offset", counter),
		)

		for chunk := uint32(0); chunk < chunkSize && int(counter) < len(r.Data); chunk++ {
			b := r.Data[counter]
			if bank < reservedBank {
				bus.Write8(bank, uint16(loROMBaseAddress+addrCounter), b)
			}
			bus.Write8(bank+highMirrorOffset, uint16(loROMBaseAddress+addrCounter), b)

			counter++
			addrCounter++
		}

		bank++
		addrCounter = 0
	}

	return nil
}
