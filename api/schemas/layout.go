package schemas

// -- Layout Schemas --

// VAlign selects how content is positioned vertically within the hard page
// area.
type VAlign uint8

const (
	VTop VAlign = iota
	VCenter
	VBottom
)

// String returns the lowercase name used in configuration and log fields.
func (v VAlign) String() string {
	switch v {
	case VTop:
		return "top"
	case VCenter:
		return "center"
	case VBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// HAlign selects how content is positioned horizontally within the hard page
// area.
type HAlign uint8

const (
	HLeft HAlign = iota
	HCenter
	HRight
)

// String returns the lowercase name used in configuration and log fields.
func (h HAlign) String() string {
	switch h {
	case HLeft:
		return "left"
	case HCenter:
		return "center"
	case HRight:
		return "right"
	default:
		return "unknown"
	}
}

// Alignment pairs the two axis choices. The layout store only holds it; the
// renderer interprets it.
type Alignment struct {
	Vertical   VAlign `json:"vertical"`
	Horizontal HAlign `json:"horizontal"`
}

// PageParams bundles every layout parameter stored for one page. It is
// always passed and returned by value; a bundle handed out by the store is
// the caller's own copy.
type PageParams struct {
	MarginsMM     Margins   `json:"margins_mm"`
	ContentRect   RectF     `json:"content_rect"`
	ContentSizeMM SizeMM    `json:"content_size_mm"`
	Alignment     Alignment `json:"alignment"`
}

// HardWidthMM is the page's total physical width: content width plus the
// left and right margins. It is derived on every call, never cached.
func (p PageParams) HardWidthMM() float64 {
	return p.ContentSizeMM.WidthMM + p.MarginsMM.LeftMM + p.MarginsMM.RightMM
}

// HardHeightMM is the page's total physical height: content height plus the
// top and bottom margins.
func (p PageParams) HardHeightMM() float64 {
	return p.ContentSizeMM.HeightMM + p.MarginsMM.TopMM + p.MarginsMM.BottomMM
}
