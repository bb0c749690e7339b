package cpu

import "github.com/mpavlov/goboy/bit"

// Flag is one of the four condition bits in the high nibble of F.
type Flag uint8

const (
	FlagZ Flag = 1 << 7 // zero
	FlagN Flag = 1 << 6 // subtract
	FlagH Flag = 1 << 5 // half carry
	FlagC Flag = 1 << 4 // carry
)

// Registers holds the CPU register file. The 16 bit pairs AF, BC, DE
// and HL are views over their byte halves; the low nibble of F always
// reads as zero.
type Registers struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8

	SP uint16
	PC uint16
}

func (r *Registers) AF() uint16 { return bit.Combine(r.A, r.F) }
func (r *Registers) BC() uint16 { return bit.Combine(r.B, r.C) }
func (r *Registers) DE() uint16 { return bit.Combine(r.D, r.E) }
func (r *Registers) HL() uint16 { return bit.Combine(r.H, r.L) }

// SetAF masks the low nibble of F, which does not exist in hardware.
func (r *Registers) SetAF(v uint16) {
	r.A = bit.High(v)
	r.F = bit.Low(v) & 0xF0
}

func (r *Registers) SetBC(v uint16) {
	r.B = bit.High(v)
	r.C = bit.Low(v)
}

func (r *Registers) SetDE(v uint16) {
	r.D = bit.High(v)
	r.E = bit.Low(v)
}

func (r *Registers) SetHL(v uint16) {
	r.H = bit.High(v)
	r.L = bit.Low(v)
}

// GetFlag reports whether the given flag bit is set.
func (r *Registers) GetFlag(f Flag) bool {
	return r.F&uint8(f) != 0
}

// SetFlag sets or clears the flag according to v.
func (r *Registers) SetFlag(f Flag, v bool) {
	if v {
		r.EnableFlag(f)
	} else {
		r.DisableFlag(f)
	}
}

func (r *Registers) EnableFlag(f Flag) {
	r.F |= uint8(f)
}

func (r *Registers) DisableFlag(f Flag) {
	r.F &^= uint8(f)
}

// flagBit returns 1 or 0 for use in rotate-through-carry operations.
func (r *Registers) flagBit(f Flag) uint8 {
	if r.GetFlag(f) {
		return 1
	}
	return 0
}
