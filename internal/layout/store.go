// Package layout implements the concurrent, indexed registry of per-page
// layout parameters behind the pagelayout facade.
package layout

import (
	"math"
	"sync"

	"github.com/tailorkit/pagelayout/api/schemas"
	"go.uber.org/zap"
)

// Fixed fallbacks, applied when no configuration is supplied.
var (
	// DefaultHardMarginsMM are the margins a page starts with.
	DefaultHardMarginsMM = schemas.Margins{LeftMM: 10, RightMM: 10, TopMM: 5, BottomMM: 5}
	// DefaultAlignment centers content on both axes.
	DefaultAlignment = schemas.Alignment{Vertical: schemas.VCenter, Horizontal: schemas.HCenter}
)

// item is the stored layout state of one page. Instances never leave the
// store; every accessor copies fields out.
type item struct {
	id            schemas.PageID
	hardMarginsMM schemas.Margins
	contentRect   schemas.RectF
	contentSizeMM schemas.SizeMM
	alignment     schemas.Alignment
}

// hardWidthMM is the page's total physical width including margins. Derived
// from current fields on every call; caching it would go stale the moment
// margins or content size change.
func (it *item) hardWidthMM() float64 {
	return it.contentSizeMM.WidthMM + it.hardMarginsMM.LeftMM + it.hardMarginsMM.RightMM
}

func (it *item) hardHeightMM() float64 {
	return it.contentSizeMM.HeightMM + it.hardMarginsMM.TopMM + it.hardMarginsMM.BottomMM
}

// Store holds the per-page layout parameters of one document session and
// answers aggregate geometric queries over them. A keyed map owns the
// entries; two descending orders over the derived hard width and hard height
// are maintained alongside it, so extremal queries never scan.
//
// One lock guards the map and both orders together. The aggregate queries
// read cross-entry state, which makes per-entry locking unsound; every
// critical section is in-memory work with no I/O, so the coarse lock stays
// cheap.
type Store struct {
	mu       sync.RWMutex
	items    map[schemas.PageID]*item
	byWidth  descOrder
	byHeight descOrder

	defMarginsMM schemas.Margins
	defAlignment schemas.Alignment
	log          *zap.Logger
}

// Ensures Store implements the settings interface at compile time.
var _ schemas.LayoutSettings = (*Store)(nil)

// NewStore creates an empty store with the fixed default margins and
// alignment. A nil logger is replaced with a no-op one.
func NewStore(logger *zap.Logger) *Store {
	return NewStoreWithDefaults(DefaultHardMarginsMM, DefaultAlignment, logger)
}

// NewStoreWithDefaults creates an empty store whose lazily created pages
// start from the given margins and alignment.
func NewStoreWithDefaults(marginsMM schemas.Margins, alignment schemas.Alignment, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		items:        make(map[schemas.PageID]*item),
		defMarginsMM: marginsMM,
		defAlignment: alignment,
		log:          logger.Named("LayoutSettings"),
	}
	s.byWidth.scalar = (*item).hardWidthMM
	s.byHeight.scalar = (*item).hardHeightMM
	return s
}

// GetPageParams returns a copy of the page's parameter bundle, or ok=false
// when the page has never been written.
func (s *Store) GetPageParams(id schemas.PageID) (schemas.PageParams, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return schemas.PageParams{}, false
	}
	return schemas.PageParams{
		MarginsMM:     it.hardMarginsMM,
		ContentRect:   it.contentRect,
		ContentSizeMM: it.contentSizeMM,
		Alignment:     it.alignment,
	}, true
}

// GetHardMarginsMM returns the page's stored margins, or the defaults when
// the page is absent.
func (s *Store) GetHardMarginsMM(id schemas.PageID) schemas.Margins {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if it, ok := s.items[id]; ok {
		return it.hardMarginsMM
	}
	return s.defMarginsMM
}

// SetHardMarginsMM upserts the page's hard margins. Margins feed both
// derived scalars, so an existing page is repositioned in both orders.
func (s *Store) SetHardMarginsMM(id schemas.PageID, marginsMM schemas.Margins) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if it, ok := s.items[id]; ok {
		s.repositionLocked(it, func() { it.hardMarginsMM = marginsMM })
	} else {
		s.insertLocked(&item{
			id:            id,
			hardMarginsMM: marginsMM,
			alignment:     s.defAlignment,
		})
	}
	s.log.Debug("Hard margins updated",
		zap.Stringer("page", id),
		zap.Float64("left_mm", marginsMM.LeftMM),
		zap.Float64("right_mm", marginsMM.RightMM),
		zap.Float64("top_mm", marginsMM.TopMM),
		zap.Float64("bottom_mm", marginsMM.BottomMM))
}

// GetPageAlignment returns the page's stored alignment, or the default when
// the page is absent.
func (s *Store) GetPageAlignment(id schemas.PageID) schemas.Alignment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if it, ok := s.items[id]; ok {
		return it.alignment
	}
	return s.defAlignment
}

// SetPageAlignment upserts the page's alignment. Alignment does not feed the
// derived scalars, so an existing page keeps its positions, but the write
// still takes the full lock so no order query interleaves with it.
func (s *Store) SetPageAlignment(id schemas.PageID, alignment schemas.Alignment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if it, ok := s.items[id]; ok {
		it.alignment = alignment
	} else {
		s.insertLocked(&item{
			id:            id,
			hardMarginsMM: s.defMarginsMM,
			alignment:     alignment,
		})
	}
	s.log.Debug("Alignment updated",
		zap.Stringer("page", id),
		zap.Stringer("vertical", alignment.Vertical),
		zap.Stringer("horizontal", alignment.Horizontal))
}

// SetContentZone upserts the page's content rectangle and physical content
// size as a pair. Content size feeds both derived scalars, so an existing
// page is repositioned in both orders.
func (s *Store) SetContentZone(id schemas.PageID, contentRect schemas.RectF, contentSizeMM schemas.SizeMM) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if it, ok := s.items[id]; ok {
		s.repositionLocked(it, func() {
			it.contentRect = contentRect
			it.contentSizeMM = contentSizeMM
		})
	} else {
		s.insertLocked(&item{
			id:            id,
			hardMarginsMM: s.defMarginsMM,
			contentRect:   contentRect,
			contentSizeMM: contentSizeMM,
			alignment:     s.defAlignment,
		})
	}
	s.log.Debug("Content zone updated",
		zap.Stringer("page", id),
		zap.Float64("width_mm", contentSizeMM.WidthMM),
		zap.Float64("height_mm", contentSizeMM.HeightMM))
}

// AggregateHardSizeMM returns the per-axis maximum hard size over all pages,
// or a zero size for an empty store.
func (s *Store) AggregateHardSizeMM() schemas.SizeMM {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.items) == 0 {
		return schemas.SizeMM{}
	}
	return schemas.SizeMM{
		WidthMM:  s.byWidth.front().hardWidthMM(),
		HeightMM: s.byHeight.front().hardHeightMM(),
	}
}

// AggregateHardSizeMMWith answers AggregateHardSizeMM as though the given
// page's content size were contentSizeMM, without mutating the store.
//
// Per axis: unless the page currently holds the maximum, the maximum stands
// as-is, whatever the hypothetical value would have been. In particular a
// page absent from the store never contributes; the query answers "if I
// changed an existing page", not "if I added one". When the page does hold
// the maximum, the answer is the hypothetical hard value (content plus the
// page's stored margins) against the runner-up.
func (s *Store) AggregateHardSizeMMWith(id schemas.PageID, contentSizeMM schemas.SizeMM) schemas.SizeMM {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.items) == 0 {
		return schemas.SizeMM{}
	}

	var widthMM float64
	if widest := s.byWidth.front(); widest.id != id {
		widthMM = widest.hardWidthMM()
	} else {
		hypo := contentSizeMM.WidthMM + widest.hardMarginsMM.LeftMM + widest.hardMarginsMM.RightMM
		if runnerUp := s.byWidth.second(); runnerUp != nil {
			widthMM = math.Max(hypo, runnerUp.hardWidthMM())
		} else {
			widthMM = hypo
		}
	}

	var heightMM float64
	if tallest := s.byHeight.front(); tallest.id != id {
		heightMM = tallest.hardHeightMM()
	} else {
		hypo := contentSizeMM.HeightMM + tallest.hardMarginsMM.TopMM + tallest.hardMarginsMM.BottomMM
		if runnerUp := s.byHeight.second(); runnerUp != nil {
			heightMM = math.Max(hypo, runnerUp.hardHeightMM())
		} else {
			heightMM = hypo
		}
	}

	return schemas.SizeMM{WidthMM: widthMM, HeightMM: heightMM}
}

// FindWidestPage returns the page with the greatest hard width, or the nil
// PageID for an empty store.
func (s *Store) FindWidestPage() schemas.PageID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if it := s.byWidth.front(); it != nil {
		return it.id
	}
	return schemas.NilPageID
}

// FindTallestPage returns the page with the greatest hard height, or the nil
// PageID for an empty store.
func (s *Store) FindTallestPage() schemas.PageID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if it := s.byHeight.front(); it != nil {
		return it.id
	}
	return schemas.NilPageID
}

// insertLocked adds a brand new item to the keyed map and both orders.
// Caller holds the write lock.
func (s *Store) insertLocked(it *item) {
	s.items[it.id] = it
	s.byWidth.insert(it)
	s.byHeight.insert(it)
}

// repositionLocked applies mutate while the item is out of both orders, then
// reinserts it where its new derived scalars place it. The removal must
// happen before the mutation: the orders locate items by their current
// scalar values. Caller holds the write lock.
func (s *Store) repositionLocked(it *item, mutate func()) {
	s.byWidth.remove(it)
	s.byHeight.remove(it)
	mutate()
	s.byWidth.insert(it)
	s.byHeight.insert(it)
}
