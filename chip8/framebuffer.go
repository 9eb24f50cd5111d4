package chip8

// Framebuffer holds up to four independent bit-packed monochrome planes
// at the machine's active resolution (spec §3, §4.5). A pixel's colour
// index is the concatenation of its bit across planes 0..N-1, N being
// the architecture's plane count.
type Framebuffer struct {
	width, height int
	rowBytes      int
	planes        [][]byte // len == maxPlanes; each len == rowBytes*height
	maxPlanes     int
}

// newFramebuffer allocates a Framebuffer for maxPlanes planes at the
// given resolution. All planes start cleared.
func newFramebuffer(width, height, maxPlanes int) *Framebuffer {
	fb := &Framebuffer{
		width:     width,
		height:    height,
		rowBytes:  width / 8,
		maxPlanes: maxPlanes,
		planes:    make([][]byte, maxPlanes),
	}
	for i := range fb.planes {
		fb.planes[i] = make([]byte, fb.rowBytes*height)
	}
	return fb
}

// SetMode resizes the framebuffer and clears every plane (spec §4.5,
// "00FE/00FF clear the framebuffer and update W,H; palette is
// preserved; plane-mask is preserved").
func (fb *Framebuffer) SetMode(width, height int) {
	fb.width, fb.height = width, height
	fb.rowBytes = width / 8
	for i := range fb.planes {
		fb.planes[i] = make([]byte, fb.rowBytes*height)
	}
}

// Dimensions returns the active resolution.
func (fb *Framebuffer) Dimensions() (width, height int) {
	return fb.width, fb.height
}

// Clear zeroes every plane selected by mask (00E0).
func (fb *Framebuffer) Clear(mask byte) {
	for p := 0; p < fb.maxPlanes; p++ {
		if mask&(1<<uint(p)) == 0 {
			continue
		}
		for i := range fb.planes[p] {
			fb.planes[p][i] = 0
		}
	}
}

// TogglePixel XORs a single pixel of one plane on, returning whether it
// was already set (a 1->0 collision per spec §4.5).
func (fb *Framebuffer) TogglePixel(plane, x, y int) bool {
	idx := y*fb.rowBytes + x/8
	bit := byte(0x80 >> uint(x%8))
	was := fb.planes[plane][idx]&bit != 0
	fb.planes[plane][idx] ^= bit
	return was
}

// Pixel reads the raw bit of one plane without mutating it.
func (fb *Framebuffer) Pixel(plane, x, y int) bool {
	idx := y*fb.rowBytes + x/8
	bit := byte(0x80 >> uint(x%8))
	return fb.planes[plane][idx]&bit != 0
}

// ColourIndex returns the concatenation of every plane's bit at (x,y),
// plane 0 as the low bit, used to look up the active palette entry.
func (fb *Framebuffer) ColourIndex(x, y int) byte {
	var idx byte
	for p := 0; p < fb.maxPlanes; p++ {
		if fb.Pixel(p, x, y) {
			idx |= 1 << uint(p)
		}
	}
	return idx
}

// PlaneBitmaps returns the raw per-plane byte slices for Display.Present.
// Callers must treat the result as read-only.
func (fb *Framebuffer) PlaneBitmaps() [][]byte {
	return fb.planes
}

// scrollVertical shifts every selected plane n rows toward dy (+1 down,
// -1 up), wiping the rows vacated at the trailing edge. Mirrors the
// teacher's scrollUp/scrollDown (massung-CHIP-8/chip8/chip8.go), adapted
// for a per-plane mask and multi-plane storage instead of a single fixed
// video buffer.
func (fb *Framebuffer) scrollVertical(mask byte, n, dy int) {
	if n <= 0 {
		return
	}
	shiftBytes := n * fb.rowBytes

	for p := 0; p < fb.maxPlanes; p++ {
		if mask&(1<<uint(p)) == 0 {
			continue
		}
		buf := fb.planes[p]
		size := len(buf)

		if dy > 0 {
			copy(buf[shiftBytes:], buf[:size-shiftBytes])
			for i := 0; i < shiftBytes && i < size; i++ {
				buf[i] = 0
			}
		} else {
			copy(buf[:size-shiftBytes], buf[shiftBytes:])
			for i := size - shiftBytes; i < size; i++ {
				buf[i] = 0
			}
		}
	}
}

// ScrollDown shifts the selected planes n rows down (00CN).
func (fb *Framebuffer) ScrollDown(mask byte, n int) { fb.scrollVertical(mask, n, 1) }

// ScrollUp shifts the selected planes n rows up (00DN).
func (fb *Framebuffer) ScrollUp(mask byte, n int) { fb.scrollVertical(mask, n, -1) }

// scrollHorizontal shifts every selected plane n columns toward dx (+1
// right, -1 left), per-pixel, wiping vacated columns.
func (fb *Framebuffer) scrollHorizontal(mask byte, n, dx int) {
	if n <= 0 {
		return
	}
	for p := 0; p < fb.maxPlanes; p++ {
		if mask&(1<<uint(p)) == 0 {
			continue
		}
		for y := 0; y < fb.height; y++ {
			if dx > 0 {
				for x := fb.width - 1; x >= 0; x-- {
					src := x - n
					bit := src >= 0 && fb.Pixel(p, src, y)
					fb.setPixel(p, x, y, bit)
				}
			} else {
				for x := 0; x < fb.width; x++ {
					src := x + n
					bit := src < fb.width && fb.Pixel(p, src, y)
					fb.setPixel(p, x, y, bit)
				}
			}
		}
	}
}

// ScrollRight shifts the selected planes n columns right (00FB).
func (fb *Framebuffer) ScrollRight(mask byte, n int) { fb.scrollHorizontal(mask, n, 1) }

// ScrollLeft shifts the selected planes n columns left (00FC).
func (fb *Framebuffer) ScrollLeft(mask byte, n int) { fb.scrollHorizontal(mask, n, -1) }

func (fb *Framebuffer) setPixel(plane, x, y int, on bool) {
	idx := y*fb.rowBytes + x/8
	bit := byte(0x80 >> uint(x%8))
	if on {
		fb.planes[plane][idx] |= bit
	} else {
		fb.planes[plane][idx] &^= bit
	}
}
