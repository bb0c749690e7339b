// Package video implements the pixel processing unit: the STAT mode
// state machine, the per scanline background/window/sprite compositor
// and the double buffered frame output.
package video

import (
	"github.com/mpavlov/goboy/addr"
	"github.com/mpavlov/goboy/bit"
	"github.com/mpavlov/goboy/bus"
	"github.com/mpavlov/goboy/memory"
)

// mode is the PPU rendering stage, matching STAT bits 1-0.
type mode uint8

const (
	modeHBlank   mode = 0
	modeVBlank   mode = 1
	modeOAMRead  mode = 2
	modeVRAMRead mode = 3
)

// Line and frame timing in T-cycles. A line spends 80 cycles scanning
// OAM, 172 transferring pixels and the rest in HBlank.
const (
	oamReadCycles  = 80
	vramReadCycles = 172
	lineCycles     = 456

	visibleLines = 144
	lastLine     = 153

	// FrameCycles is the full frame period: 154 lines of 456 cycles.
	FrameCycles = lineCycles * (lastLine + 1)
)

// STAT register bit positions.
const (
	statHBlankIRQ      = 3
	statVBlankIRQ      = 4
	statOAMIRQ         = 5
	statLYCIRQ         = 6
	statLYCCoincidence = 2
)

// PPU drives the LCD. Rendering happens once per visible line when the
// line enters its pixel transfer window; at the end of line 153 the
// back buffer becomes the stable front buffer.
type PPU struct {
	clock          int
	lineDrawn      bool
	screenPrepared bool
	prevMode       mode

	screen       FrameBuffer
	screenBuffer FrameBuffer

	// bgwinColorID remembers the pre-palette color id of the
	// background/window pixel at each x, for sprite priority.
	bgwinColorID [FrameWidth]uint8
}

func NewPPU() *PPU {
	return &PPU{prevMode: modeOAMRead}
}

// Step advances the PPU by the cycles the last instruction consumed.
func (p *PPU) Step(b bus.Bus, cycles int) {
	ly := int(b.Read8(addr.LY))

	current := currentMode(ly, p.clock)
	p.updateMode(b, current)
	p.compareLYToLYC(b, ly)

	if current == modeVRAMRead && ly < visibleLines && !p.lineDrawn {
		p.renderScanline(b, ly)
		p.lineDrawn = true
	}

	p.clock += cycles
	if p.clock < lineCycles {
		return
	}

	p.clock -= lineCycles
	p.lineDrawn = false
	ly++

	if ly == visibleLines {
		memory.RequestInterrupt(b, addr.VBlankInterrupt)
	}
	if ly > lastLine {
		p.screen = p.screenBuffer
		p.screenPrepared = true
		ly = 0
	}

	b.Write8(addr.LY, uint8(ly))
}

// ScreenPrepared reports whether a full frame has been composed since
// the last TransferScreen call.
func (p *PPU) ScreenPrepared() bool {
	return p.screenPrepared
}

// TransferScreen hands out the stable front buffer. Calling it before
// the PPU signals a prepared frame is a programmer error.
func (p *PPU) TransferScreen() *FrameBuffer {
	if !p.screenPrepared {
		panic("screen is not prepared")
	}
	p.screenPrepared = false
	return &p.screen
}

func currentMode(ly, clock int) mode {
	if ly >= visibleLines {
		return modeVBlank
	}
	switch {
	case clock < oamReadCycles:
		return modeOAMRead
	case clock < oamReadCycles+vramReadCycles:
		return modeVRAMRead
	default:
		return modeHBlank
	}
}

// updateMode stores the mode bits in STAT and, on a transition into a
// mode with its STAT interrupt enabled, raises LCDStat.
func (p *PPU) updateMode(b bus.Bus, current mode) {
	stat := b.Read8(addr.STAT)
	b.Write8(addr.STAT, stat&0xFC|uint8(current))

	if current == p.prevMode {
		return
	}
	p.prevMode = current

	var irqBit uint8
	switch current {
	case modeHBlank:
		irqBit = statHBlankIRQ
	case modeVBlank:
		irqBit = statVBlankIRQ
	case modeOAMRead:
		irqBit = statOAMIRQ
	default:
		return // pixel transfer has no STAT interrupt
	}

	if bit.IsSet(irqBit, stat) {
		memory.RequestInterrupt(b, addr.LCDStatInterrupt)
	}
}

// compareLYToLYC maintains the coincidence bit and raises LCDStat when
// the comparison first becomes true with its interrupt enabled.
func (p *PPU) compareLYToLYC(b bus.Bus, ly int) {
	stat := b.Read8(addr.STAT)
	lyc := int(b.Read8(addr.LYC))

	if ly != lyc {
		b.Write8(addr.STAT, bit.Reset(statLYCCoincidence, stat))
		return
	}
	if bit.IsSet(statLYCCoincidence, stat) {
		return // already flagged for this line
	}

	b.Write8(addr.STAT, bit.Set(statLYCCoincidence, stat))
	if bit.IsSet(statLYCIRQ, stat) {
		memory.RequestInterrupt(b, addr.LCDStatInterrupt)
	}
}

// renderScanline paints one visible line into the back buffer:
// background first, window on top of it, sprites last.
func (p *PPU) renderScanline(b bus.Bus, ly int) {
	lcdc := b.Read8(addr.LCDC)
	if !bit.IsSet(7, lcdc) {
		return
	}

	for i := range p.bgwinColorID {
		p.bgwinColorID[i] = 0
	}

	if bit.IsSet(0, lcdc) {
		p.renderBackgroundLine(b, lcdc, ly)
		if bit.IsSet(5, lcdc) {
			p.renderWindowLine(b, lcdc, ly)
		}
	}
	if bit.IsSet(1, lcdc) {
		p.renderSpriteLine(b, lcdc, ly)
	}
}

func (p *PPU) renderBackgroundLine(b bus.Bus, lcdc uint8, ly int) {
	scrollY := int(b.Read8(addr.SCY))
	scrollX := int(b.Read8(addr.SCX))
	palette := b.Read8(addr.BGP)
	mapBase := tileMapBase(lcdc, 3)

	y := (ly + scrollY) & 0xFF
	row := uint16(y / 8 * 32)

	for x := 0; x < FrameWidth; x++ {
		xm := (x + scrollX) & 0xFF
		tileNum := b.Read8(mapBase + row + uint16(xm/8))
		low, high := p.tileRow(b, lcdc, tileNum, uint16(y%8))

		colorID := colorIDAt(low, high, uint8(7-xm%8))
		p.bgwinColorID[x] = colorID
		p.screenBuffer.SetPixel(x, ly, applyPalette(palette, colorID))
	}
}

func (p *PPU) renderWindowLine(b bus.Bus, lcdc uint8, ly int) {
	windowY := int(b.Read8(addr.WY))
	windowX := int(b.Read8(addr.WX)) - 7
	if windowY > ly || windowX >= FrameWidth {
		return
	}

	palette := b.Read8(addr.BGP)
	mapBase := tileMapBase(lcdc, 6)

	y := ly - windowY
	row := uint16(y / 8 * 32)

	start := windowX
	if start < 0 {
		start = 0
	}

	for x := start; x < FrameWidth; x++ {
		xw := x - windowX
		tileNum := b.Read8(mapBase + row + uint16(xw/8))
		low, high := p.tileRow(b, lcdc, tileNum, uint16(y%8))

		colorID := colorIDAt(low, high, uint8(7-xw%8))
		p.bgwinColorID[x] = colorID
		p.screenBuffer.SetPixel(x, ly, applyPalette(palette, colorID))
	}
}

func (p *PPU) renderSpriteLine(b bus.Bus, lcdc uint8, ly int) {
	height := 8
	if bit.IsSet(2, lcdc) {
		height = 16
	}

	for sprite := 0; sprite < 40; sprite++ {
		entry := addr.OAMStart + uint16(sprite*4)
		spriteY := int(b.Read8(entry)) - 16
		spriteX := int(b.Read8(entry+1)) - 8

		if ly < spriteY || ly >= spriteY+height {
			continue
		}

		tile := b.Read8(entry + 2)
		attrs := b.Read8(entry + 3)

		ty := ly - spriteY
		if bit.IsSet(6, attrs) {
			ty = height - 1 - ty
		}
		if height == 16 {
			// tall sprites ignore the tile number's low bit
			tile &= 0xFE
		}

		rowAddr := addr.TileDataUnsigned + uint16(tile)*16 + uint16(ty)*2
		low := b.Read8(rowAddr)
		high := b.Read8(rowAddr + 1)

		palette := b.Read8(addr.OBP0)
		if bit.IsSet(4, attrs) {
			palette = b.Read8(addr.OBP1)
		}
		behindBG := bit.IsSet(7, attrs)

		for tx := 0; tx < 8; tx++ {
			x := spriteX + tx
			if x < 0 || x >= FrameWidth {
				continue
			}

			bitIndex := uint8(7 - tx)
			if bit.IsSet(5, attrs) {
				bitIndex = uint8(tx)
			}

			colorID := colorIDAt(low, high, bitIndex)
			if colorID == 0 {
				continue // color 0 is transparent for sprites
			}
			if behindBG && p.bgwinColorID[x] != 0 {
				continue
			}

			p.screenBuffer.SetPixel(x, ly, applyPalette(palette, colorID))
		}
	}
}

// tileRow fetches the two bit-plane bytes for one row of a tile,
// resolving the tile number through the selected data area. The signed
// area addresses tiles -128..127 from 0x8800.
func (p *PPU) tileRow(b bus.Bus, lcdc, tileNum uint8, row uint16) (uint8, uint8) {
	var base uint16
	if bit.IsSet(4, lcdc) {
		base = addr.TileDataUnsigned + uint16(tileNum)*16
	} else {
		base = addr.TileDataSigned + uint16(int(int8(tileNum))+128)*16
	}

	return b.Read8(base + row*2), b.Read8(base + row*2 + 1)
}

// colorIDAt combines the two bit planes at the given bit position into
// a 2 bit color id.
func colorIDAt(low, high, bitIndex uint8) uint8 {
	return bit.Value(bitIndex, high)<<1 | bit.Value(bitIndex, low)
}

func tileMapBase(lcdc, selectBit uint8) uint16 {
	if bit.IsSet(selectBit, lcdc) {
		return addr.TileMap1
	}
	return addr.TileMap0
}
