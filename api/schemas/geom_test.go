package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeMMIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, SizeMM{}.IsEmpty())
	assert.True(t, SizeMM{WidthMM: 100}.IsEmpty())
	assert.True(t, SizeMM{WidthMM: 100, HeightMM: -1}.IsEmpty())
	assert.False(t, SizeMM{WidthMM: 210, HeightMM: 297}.IsEmpty())
}

func TestRectFIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, RectF{}.IsEmpty())
	assert.True(t, RectF{X: 5, Y: 5, Width: 10}.IsEmpty())
	assert.False(t, RectF{Width: 800, Height: 600}.IsEmpty())
}

func TestPageParamsDerivedSizes(t *testing.T) {
	t.Parallel()

	p := PageParams{
		MarginsMM:     Margins{LeftMM: 10, RightMM: 10, TopMM: 5, BottomMM: 5},
		ContentSizeMM: SizeMM{WidthMM: 190, HeightMM: 280},
	}
	assert.InDelta(t, 210, p.HardWidthMM(), 1e-9)
	assert.InDelta(t, 290, p.HardHeightMM(), 1e-9)

	t.Run("derived values track field changes", func(t *testing.T) {
		t.Parallel()
		q := p
		q.MarginsMM.LeftMM = 0
		assert.InDelta(t, 200, q.HardWidthMM(), 1e-9)
	})

	t.Run("zero bundle is all margins", func(t *testing.T) {
		t.Parallel()
		q := PageParams{MarginsMM: Margins{LeftMM: 10, RightMM: 10, TopMM: 5, BottomMM: 5}}
		assert.InDelta(t, 20, q.HardWidthMM(), 1e-9)
		assert.InDelta(t, 10, q.HardHeightMM(), 1e-9)
	})
}
