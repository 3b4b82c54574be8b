package schemas

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// -- Page Identity Schemas --

// SubPage identifies which logical page a scanned image frame contributes.
// A two-page spread scanned as one image yields a LeftPage and a RightPage
// for the same frame.
type SubPage uint8

const (
	SinglePage SubPage = iota
	LeftPage
	RightPage
)

// String returns a short human-readable name, used in log fields.
func (s SubPage) String() string {
	switch s {
	case SinglePage:
		return "single"
	case LeftPage:
		return "left"
	case RightPage:
		return "right"
	default:
		return fmt.Sprintf("subpage(%d)", uint8(s))
	}
}

// PageID identifies one logical page of a document: the source image, the
// frame within that image (multi-frame formats such as TIFF), and the
// sub-page. The zero value is the nil sentinel returned by queries that
// find no page.
//
// PageID is comparable and therefore usable as a map key.
type PageID struct {
	ImageID uuid.UUID `json:"image_id"`
	Frame   int       `json:"frame"`
	SubPage SubPage   `json:"sub_page"`
}

// NilPageID is the "no such page" sentinel.
var NilPageID PageID

// IsNil reports whether the id is the nil sentinel.
func (p PageID) IsNil() bool {
	return p == NilPageID
}

// Less defines the total order over page ids: by image, then frame, then
// sub-page. It is consistent with == on every field.
func (p PageID) Less(o PageID) bool {
	if c := bytes.Compare(p.ImageID[:], o.ImageID[:]); c != 0 {
		return c < 0
	}
	if p.Frame != o.Frame {
		return p.Frame < o.Frame
	}
	return p.SubPage < o.SubPage
}

// String implements fmt.Stringer for log fields.
func (p PageID) String() string {
	return fmt.Sprintf("%s#%d/%s", p.ImageID, p.Frame, p.SubPage)
}
