package video

const (
	// FrameWidth and FrameHeight are the LCD dimensions in pixels.
	FrameWidth  = 160
	FrameHeight = 144
)

// Pixel is one RGBA screen dot.
type Pixel struct {
	R, G, B, A uint8
}

// FrameBuffer is one full 160x144 frame. It is a value type so the PPU
// can promote the back buffer to the front buffer with a plain
// assignment.
type FrameBuffer struct {
	pixels [FrameHeight][FrameWidth]Pixel
}

func (fb *FrameBuffer) GetPixel(x, y int) Pixel {
	return fb.pixels[y][x]
}

func (fb *FrameBuffer) SetPixel(x, y int, p Pixel) {
	fb.pixels[y][x] = p
}

// Clear resets every pixel to transparent black.
func (fb *FrameBuffer) Clear() {
	for y := range fb.pixels {
		for x := range fb.pixels[y] {
			fb.pixels[y][x] = Pixel{}
		}
	}
}

// Bytes flattens the frame to RGBA bytes, row major from the top left,
// which is the layout host front-ends consume directly.
func (fb *FrameBuffer) Bytes() []byte {
	data := make([]byte, 0, FrameWidth*FrameHeight*4)
	for y := 0; y < FrameHeight; y++ {
		for x := 0; x < FrameWidth; x++ {
			p := fb.pixels[y][x]
			data = append(data, p.R, p.G, p.B, p.A)
		}
	}
	return data
}
