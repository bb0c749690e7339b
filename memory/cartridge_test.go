package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeROM builds a cartridge image of the given size with the type byte
// set and a recognizable title.
func makeROM(cartType uint8, size int) []byte {
	rom := make([]byte, size)
	copy(rom[titleAddress:], "TESTCART")
	rom[cartridgeTypeAddress] = cartType
	return rom
}

func TestNewCartridge(t *testing.T) {
	tests := []struct {
		name     string
		cartType uint8
		wantMBC  interface{}
	}{
		{"ROM only", 0x00, &noMBC{}},
		{"ROM+RAM", 0x08, &noMBC{}},
		{"ROM+RAM+battery", 0x09, &noMBC{}},
		{"MBC1", 0x01, &mbc1{}},
		{"MBC1+RAM", 0x02, &mbc1{}},
		{"MBC1+RAM+battery", 0x03, &mbc1{}},
		{"MBC5", 0x19, &mbc5{}},
		{"MBC5+rumble", 0x1C, &mbc5{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart, err := NewCartridge(makeROM(tt.cartType, 0x8000))
			require.NoError(t, err)
			assert.IsType(t, tt.wantMBC, cart.mbc)
			assert.Equal(t, "TESTCART", cart.Title())
		})
	}
}

func TestNewCartridgeUnsupported(t *testing.T) {
	for _, cartType := range []uint8{0x05, 0x06, 0x0F, 0x10, 0x11, 0x12, 0x13, 0xFF} {
		_, err := NewCartridge(makeROM(cartType, 0x8000))
		assert.ErrorIs(t, err, ErrUnsupportedCartridge, "type 0x%02X", cartType)
	}
}

func TestNewCartridgeTruncated(t *testing.T) {
	_, err := NewCartridge([]byte{0x00, 0x01, 0x02})
	assert.ErrorIs(t, err, ErrTruncatedCartridge)

	t.Run("boundary", func(t *testing.T) {
		// 0x147 bytes: the type byte at 0x0147 is out of reach
		_, err := NewCartridge(make([]byte, romSizeAddress-1))
		assert.ErrorIs(t, err, ErrTruncatedCartridge)

		// 0x148 bytes: just enough to read the type byte
		cart, err := NewCartridge(make([]byte, romSizeAddress))
		require.NoError(t, err)
		assert.IsType(t, &noMBC{}, cart.mbc)
	})
}

func TestTitleCleaning(t *testing.T) {
	rom := make([]byte, 0x8000)
	copy(rom[titleAddress:], append([]byte("GAME"), 0x00, 0x00, 0x01))

	cart, err := NewCartridge(rom)
	require.NoError(t, err)
	assert.Equal(t, "GAME  ?", cart.Title())
}
