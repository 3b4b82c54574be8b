package schemas

// -- Geometry Schemas --
//
// All physical lengths in this package are millimetres; pixel-space values
// carry no unit and are opaque to the layout store.

// SizeMM is a physical size in millimetres.
type SizeMM struct {
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
}

// IsEmpty reports whether the size has no usable area.
func (s SizeMM) IsEmpty() bool {
	return s.WidthMM <= 0 || s.HeightMM <= 0
}

// RectF is an axis-aligned rectangle in pixel/device space. The layout store
// only carries it alongside the physical content size; it never interprets
// the coordinates.
type RectF struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsEmpty reports whether the rectangle has no usable area.
func (r RectF) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Margins are the hard page margins in millimetres. All four are expected to
// be non-negative; the store does not validate them.
type Margins struct {
	LeftMM   float64 `json:"left_mm"`
	RightMM  float64 `json:"right_mm"`
	TopMM    float64 `json:"top_mm"`
	BottomMM float64 `json:"bottom_mm"`
}
