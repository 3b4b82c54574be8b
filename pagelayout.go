// Package pagelayout provides the concurrent per-page layout settings store
// of a scanned-document post-processing pipeline: hard margins, content
// geometry and alignment per page, plus aggregate queries over the whole
// collection (widest page, tallest page, combined hard size, and what-if
// variants of the combined size).
package pagelayout

import (
	"github.com/spf13/viper"
	"github.com/tailorkit/pagelayout/api/schemas"
	"github.com/tailorkit/pagelayout/internal/config"
	"github.com/tailorkit/pagelayout/internal/layout"
	"github.com/tailorkit/pagelayout/internal/observability"
	"go.uber.org/zap"
)

// Settings is the public face of the layout parameter store. It is a thin
// pass-through over the internal store: every method delegates directly and
// inherits its concurrency guarantees. One Settings instance lives for one
// document session.
type Settings struct {
	store *layout.Store
}

// Ensures the facade keeps matching the store's contract.
var _ schemas.LayoutSettings = (*Settings)(nil)

// New creates an empty settings store with the fixed defaults (margins
// 10/10/5/5 mm, content centered). A nil logger falls back to the global
// logger from internal/observability.
func New(logger *zap.Logger) *Settings {
	if logger == nil {
		logger = observability.L()
	}
	return &Settings{store: layout.NewStore(logger)}
}

// NewFromViper creates a settings store taking its default margins and
// alignment from configuration. Defaults for keys the caller did not set are
// applied first. A nil viper behaves exactly like New.
func NewFromViper(v *viper.Viper, logger *zap.Logger) (*Settings, error) {
	if logger == nil {
		logger = observability.L()
	}
	if v == nil {
		return New(logger), nil
	}
	config.SetDefaults(v)
	cfg, err := config.NewConfigFromViper(v)
	if err != nil {
		return nil, err
	}
	alignment, err := cfg.Layout.Alignment()
	if err != nil {
		return nil, err
	}
	return &Settings{
		store: layout.NewStoreWithDefaults(cfg.Layout.MarginsMM(), alignment, logger),
	}, nil
}

// Close tears the session down. The store holds no external resources, so
// this only exists to pair with New at session boundaries.
func (s *Settings) Close() error {
	return nil
}

// GetPageParams returns a copy of the page's parameter bundle, or ok=false
// when the page has never been written.
func (s *Settings) GetPageParams(id schemas.PageID) (schemas.PageParams, bool) {
	return s.store.GetPageParams(id)
}

// GetHardMarginsMM returns the page's stored margins, or the defaults when
// the page is absent.
func (s *Settings) GetHardMarginsMM(id schemas.PageID) schemas.Margins {
	return s.store.GetHardMarginsMM(id)
}

// SetHardMarginsMM upserts the page's hard margins.
func (s *Settings) SetHardMarginsMM(id schemas.PageID, marginsMM schemas.Margins) {
	s.store.SetHardMarginsMM(id, marginsMM)
}

// GetPageAlignment returns the page's stored alignment, or the default when
// the page is absent.
func (s *Settings) GetPageAlignment(id schemas.PageID) schemas.Alignment {
	return s.store.GetPageAlignment(id)
}

// SetPageAlignment upserts the page's alignment.
func (s *Settings) SetPageAlignment(id schemas.PageID, alignment schemas.Alignment) {
	s.store.SetPageAlignment(id, alignment)
}

// SetContentZone upserts the page's content rectangle and physical content
// size as a pair.
func (s *Settings) SetContentZone(id schemas.PageID, contentRect schemas.RectF, contentSizeMM schemas.SizeMM) {
	s.store.SetContentZone(id, contentRect, contentSizeMM)
}

// AggregateHardSizeMM returns the smallest size accommodating every page's
// hard width and hard height independently.
func (s *Settings) AggregateHardSizeMM() schemas.SizeMM {
	return s.store.AggregateHardSizeMM()
}

// AggregateHardSizeMMWith answers the aggregate as though the given page's
// content size were contentSizeMM, without mutating the store.
func (s *Settings) AggregateHardSizeMMWith(id schemas.PageID, contentSizeMM schemas.SizeMM) schemas.SizeMM {
	return s.store.AggregateHardSizeMMWith(id, contentSizeMM)
}

// FindWidestPage returns the page with the greatest hard width, or the nil
// PageID for an empty store.
func (s *Settings) FindWidestPage() schemas.PageID {
	return s.store.FindWidestPage()
}

// FindTallestPage returns the page with the greatest hard height, or the nil
// PageID for an empty store.
func (s *Settings) FindTallestPage() schemas.PageID {
	return s.store.FindTallestPage()
}
