package memory

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Cartridge header layout.
const (
	titleAddress         = 0x0134
	titleLength          = 16
	cartridgeTypeAddress = 0x0147
	romSizeAddress       = 0x0148
	ramSizeAddress       = 0x0149
)

var (
	// ErrUnsupportedCartridge is returned when the type byte names an MBC
	// this emulator does not implement (or an unknown value).
	ErrUnsupportedCartridge = errors.New("unsupported cartridge type")
	// ErrTruncatedCartridge is returned when the image is too short to
	// reach the cartridge type byte at 0x0147.
	ErrTruncatedCartridge = errors.New("cartridge image is truncated")
)

// Cartridge owns the ROM image and the bank controller decoded from the
// type byte at 0x0147. All reads and writes in the cartridge address
// ranges go through the controller.
type Cartridge struct {
	mbc      MBC
	title    string
	cartType uint8
}

// NewCartridge validates the image header and builds the matching bank
// controller. Recognized type bytes:
//
//	0x00, 0x08, 0x09             no MBC
//	0x01, 0x02, 0x03             MBC1
//	0x19 - 0x1E                  MBC5
//
// Everything else (MBC2, MBC3, ...) fails with ErrUnsupportedCartridge.
func NewCartridge(data []byte) (*Cartridge, error) {
	// the image must be long enough to read the type byte at 0x0147
	if len(data) < romSizeAddress {
		return nil, ErrTruncatedCartridge
	}

	cart := &Cartridge{
		title:    cleanTitle(data[titleAddress : titleAddress+titleLength]),
		cartType: data[cartridgeTypeAddress],
	}

	switch cart.cartType {
	case 0x00, 0x08, 0x09:
		cart.mbc = newNoMBC(data)
	case 0x01, 0x02, 0x03:
		cart.mbc = newMBC1(data)
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E:
		cart.mbc = newMBC5(data)
	default:
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnsupportedCartridge, cart.cartType)
	}

	return cart, nil
}

// Title returns the game title from the header, cleaned of padding.
func (c *Cartridge) Title() string {
	return c.title
}

// Read reads a byte from the ROM or external RAM ranges.
func (c *Cartridge) Read(address uint16) uint8 {
	return c.mbc.Read(address)
}

// Write forwards a write to the bank controller. Depending on the
// address this switches banks, toggles RAM or stores into external RAM.
func (c *Cartridge) Write(address uint16, value uint8) {
	c.mbc.Write(address, value)
}

// cleanTitle trims NUL padding and replaces non printable bytes, since
// header titles are fixed width and often zero padded.
func cleanTitle(raw []byte) string {
	runes := make([]rune, 0, len(raw))
	for _, b := range raw {
		r := rune(b)
		switch {
		case r == 0:
			r = ' '
		case !unicode.IsPrint(r):
			r = '?'
		}
		runes = append(runes, r)
	}

	return strings.TrimSpace(string(runes))
}
