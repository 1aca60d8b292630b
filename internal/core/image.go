package core

// Cell is a single character cell with its color.
// A zero Rune marks a transparent cell.
type Cell struct {
	Rune  rune
	Color Color
}

// Transparent reports whether the cell draws nothing.
func (c Cell) Transparent() bool {
	return c.Rune == 0
}

// Image is a rectangular grid of cells with transparency.
// Sprites, composited obstacles and the background are all Images.
type Image struct {
	width  int
	height int
	cells  []Cell
}

// NewImage creates a fully transparent image.
func NewImage(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the image width in cells.
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in cells.
func (img *Image) Height() int {
	return img.height
}

// At returns the cell at (x, y). Out-of-bounds cells are transparent.
func (img *Image) At(x, y int) Cell {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return Cell{}
	}
	return img.cells[y*img.width+x]
}

// Set writes a cell. Out-of-bounds coordinates are silently ignored.
func (img *Image) Set(x, y int, c Cell) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	img.cells[y*img.width+x] = c
}

// Blit composites src onto img with its top-left corner at (x, y).
// Transparent source cells leave the destination untouched.
func (img *Image) Blit(src *Image, x, y int) {
	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			c := src.cells[sy*src.width+sx]
			if c.Transparent() {
				continue
			}
			img.Set(x+sx, y+sy, c)
		}
	}
}

// Mask is a per-cell opacity bitmap used for precise overlap tests.
type Mask struct {
	width  int
	height int
	bits   []bool
}

// MaskFromImage builds a mask with a bit set for every opaque cell.
func MaskFromImage(img *Image) *Mask {
	m := &Mask{
		width:  img.width,
		height: img.height,
		bits:   make([]bool, len(img.cells)),
	}
	for i, c := range img.cells {
		m.bits[i] = !c.Transparent()
	}
	return m
}

// Width returns the mask width.
func (m *Mask) Width() int {
	return m.width
}

// Height returns the mask height.
func (m *Mask) Height() int {
	return m.height
}

// Get reports whether the bit at (x, y) is set. Out of bounds is unset.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}

// Count returns the number of set bits.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlaps reports whether any set bit of m coincides with a set bit of
// other when other's top-left corner is placed at (dx, dy) in m's
// coordinates. It stops at the first overlapping pair.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.width, dx+other.width)
	y1 := min(m.height, dy+other.height)

	for y := y0; y < y1; y++ {
		row := y * m.width
		orow := (y - dy) * other.width
		for x := x0; x < x1; x++ {
			if m.bits[row+x] && other.bits[orow+x-dx] {
				return true
			}
		}
	}
	return false
}
