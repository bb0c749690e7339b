package memory

import (
	"github.com/mpavlov/goboy/addr"
	"github.com/mpavlov/goboy/bit"
	"github.com/mpavlov/goboy/bus"
)

// TIMA rates selected by TAC bits 1-0, in T-cycles per increment.
var timaThresholds = [4]int{1024, 16, 64, 256}

const dividerThreshold = 256

// Timer drives the DIV and TIMA registers. Both are plain counters with
// a cycles-per-tick threshold; TIMA's threshold follows TAC and its
// overflow reloads TMA and raises the Timer interrupt.
type Timer struct {
	divider counter
	tima    counter
}

// NewTimer returns a timer with DIV at its fixed rate and TIMA at the
// slowest selectable rate.
func NewTimer() *Timer {
	return &Timer{
		divider: counter{threshold: dividerThreshold},
		tima:    counter{threshold: timaThresholds[0]},
	}
}

// Step advances both counters by the given number of T-cycles.
func (t *Timer) Step(b bus.Bus, cycles int) {
	if t.divider.add(cycles) {
		t.incrementDivider(b)
	}

	tac := b.Read8(addr.TAC)
	if !bit.IsSet(2, tac) {
		return
	}

	t.tima.threshold = timaThresholds[tac&0x03]
	if t.tima.add(cycles) {
		t.incrementTIMA(b)
	}
}

// divSetter is the internal capability for advancing DIV. A bus that
// implements the guest-visible reset-on-write rule for DIV must provide
// it; a bus with plain register storage doesn't need to.
type divSetter interface {
	setDIV(value uint8)
}

func (t *Timer) incrementDivider(b bus.Bus) {
	v := b.Read8(addr.DIV) + 1
	if s, ok := b.(divSetter); ok {
		s.setDIV(v)
		return
	}
	b.Write8(addr.DIV, v)
}

func (t *Timer) incrementTIMA(b bus.Bus) {
	v := b.Read8(addr.TIMA)
	if v < 0xFF {
		b.Write8(addr.TIMA, v+1)
		return
	}

	b.Write8(addr.TIMA, b.Read8(addr.TMA))
	RequestInterrupt(b, addr.TimerInterrupt)
}

// counter accumulates cycles and reports when the threshold is crossed.
type counter struct {
	threshold int
	cycles    int
}

func (c *counter) add(n int) bool {
	c.cycles += n
	if c.cycles >= c.threshold {
		c.cycles -= c.threshold
		return true
	}
	return false
}
