package memory

import (
	"fmt"
	"log/slog"

	"github.com/mpavlov/goboy/addr"
	"github.com/mpavlov/goboy/bit"
)

// serialPort is a link cable with nothing on the other end. Writes are
// stored so guest code can read its own registers back; starting a
// transfer completes immediately with no peer byte, which is what a
// disconnected cable looks like.
type serialPort struct {
	sb uint8
	sc uint8
}

func newSerialPort() *serialPort {
	return &serialPort{}
}

func (s *serialPort) Read(address uint16) uint8 {
	if address == addr.SB {
		return s.sb
	}
	return s.sc
}

func (s *serialPort) Write(address uint16, value uint8) {
	if address == addr.SB {
		s.sb = value
		return
	}

	if bit.IsSet(7, value) {
		slog.Debug("serial transfer with no peer", "data", fmt.Sprintf("0x%02X", s.sb))
		// transfer "completes" instantly: clear the start bit, shift in 0xFF
		s.sb = 0xFF
		value = bit.Reset(7, value)
	}
	s.sc = value
}
