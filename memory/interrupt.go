package memory

import (
	"fmt"

	"github.com/mpavlov/goboy/addr"
	"github.com/mpavlov/goboy/bus"
)

// RequestInterrupt marks the given source as pending by setting its bit
// in the IF register. Requesting NoInterrupt is a programmer error.
func RequestInterrupt(b bus.Bus, interrupt addr.Interrupt) {
	if interrupt == addr.NoInterrupt {
		panic("this interrupt cannot be requested")
	}

	flags := b.Read8(addr.IF)
	b.Write8(addr.IF, flags|interrupt.Mask())
}

// ReceiveInterrupt returns the highest priority source that is both
// enabled (IE) and pending (IF), clearing its pending bit. It returns
// NoInterrupt when nothing is serviceable.
func ReceiveInterrupt(b bus.Bus) addr.Interrupt {
	enabled := b.Read8(addr.IE)
	pending := b.Read8(addr.IF)
	v := enabled & pending

	for _, interrupt := range []addr.Interrupt{
		addr.VBlankInterrupt,
		addr.LCDStatInterrupt,
		addr.TimerInterrupt,
		addr.SerialInterrupt,
		addr.JoypadInterrupt,
	} {
		if v&interrupt.Mask() != 0 {
			discardInterrupt(b, interrupt)
			return interrupt
		}
	}

	return addr.NoInterrupt
}

func discardInterrupt(b bus.Bus, interrupt addr.Interrupt) {
	if interrupt == addr.NoInterrupt {
		panic(fmt.Sprintf("cannot discard interrupt %s", interrupt))
	}

	flags := b.Read8(addr.IF)
	b.Write8(addr.IF, flags&^interrupt.Mask())
}
