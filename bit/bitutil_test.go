package bit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineHighLow(t *testing.T) {
	assert.Equal(t, uint16(0xABCD), Combine(0xAB, 0xCD))
	assert.Equal(t, uint8(0xAB), High(0xABCD))
	assert.Equal(t, uint8(0xCD), Low(0xABCD))
}

func TestIsSet(t *testing.T) {
	assert.True(t, IsSet(0, 0b0001))
	assert.False(t, IsSet(1, 0b0001))
	assert.True(t, IsSet(7, 0x80))
}

func TestSetReset(t *testing.T) {
	assert.Equal(t, uint8(0b0101), Set(2, 0b0001))
	assert.Equal(t, uint8(0b0001), Reset(2, 0b0101))
	assert.Equal(t, uint8(0b0101), Reset(1, 0b0101), "resetting a clear bit is a no-op")
}

func TestValue(t *testing.T) {
	assert.Equal(t, uint8(1), Value(3, 0b1000))
	assert.Equal(t, uint8(0), Value(2, 0b1000))
}
