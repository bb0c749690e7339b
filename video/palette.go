package video

// monochromePalette maps the four shade indices to the green tones of
// the original LCD, lightest first.
var monochromePalette = [4]Pixel{
	{R: 0x9B, G: 0xBC, B: 0x0F, A: 0xFF},
	{R: 0x8B, G: 0xAC, B: 0x0F, A: 0xFF},
	{R: 0x30, G: 0x62, B: 0x30, A: 0xFF},
	{R: 0x0F, G: 0x38, B: 0x0F, A: 0xFF},
}

// applyPalette resolves a 2 bit tile color id through a palette
// register (BGP, OBP0 or OBP1) into a screen pixel. The register packs
// four shade indices, two bits per color id.
func applyPalette(palette, colorID uint8) Pixel {
	shade := palette >> (colorID * 2) & 0x03
	return monochromePalette[shade]
}
