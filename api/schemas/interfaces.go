package schemas

// -- Layout Settings Interface --

// LayoutSettings is the per-page layout parameter store shared by the page
// layout stage's UI and its background workers. Implementations must be safe
// for concurrent use, must return copies (never live references into their
// own state), and must signal absence through sentinels rather than errors:
// the nil PageID, a zero SizeMM, the configured defaults, or a false second
// return.
type LayoutSettings interface {
	// GetPageParams returns a copy of the stored parameter bundle for the
	// page, or ok=false when the page has never been written.
	GetPageParams(id PageID) (PageParams, bool)

	// GetHardMarginsMM returns the page's stored hard margins, or the
	// default margins when the page is absent.
	GetHardMarginsMM(id PageID) Margins

	// SetHardMarginsMM upserts the page's hard margins. An absent page is
	// created with every other field at its default.
	SetHardMarginsMM(id PageID, marginsMM Margins)

	// GetPageAlignment returns the page's stored alignment, or the default
	// alignment when the page is absent.
	GetPageAlignment(id PageID) Alignment

	// SetPageAlignment upserts the page's alignment. An absent page is
	// created with every other field at its default.
	SetPageAlignment(id PageID, alignment Alignment)

	// SetContentZone upserts the page's content rectangle and physical
	// content size. The two always travel together because they are
	// produced together by content detection.
	SetContentZone(id PageID, contentRect RectF, contentSizeMM SizeMM)

	// AggregateHardSizeMM returns the smallest size that accommodates every
	// page's hard width and hard height independently, or a zero size for
	// an empty store.
	AggregateHardSizeMM() SizeMM

	// AggregateHardSizeMMWith answers the same query as though the given
	// page's content size were contentSizeMM, without mutating the store.
	// Per axis, a page other than the current maximum can never displace
	// that maximum, so a page absent from the store contributes nothing.
	AggregateHardSizeMMWith(id PageID, contentSizeMM SizeMM) SizeMM

	// FindWidestPage returns the page with the greatest hard width, or the
	// nil PageID for an empty store.
	FindWidestPage() PageID

	// FindTallestPage returns the page with the greatest hard height, or
	// the nil PageID for an empty store.
	FindTallestPage() PageID
}
