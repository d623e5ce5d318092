package braille

import (
	"errors"
	"testing"

	"github.com/npillmayer/nameplate"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDotOffsets(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	want := map[int][2]float64{
		1: {-1, 2}, 2: {-1, 0}, 3: {-1, -2},
		4: {1, 2}, 5: {1, 0}, 6: {1, -2},
	}
	for n, w := range want {
		dx, dy := Offset(n, 2)
		if dx != w[0] || dy != w[1] {
			t.Errorf("dot %d: expected offset (%g,%g), got (%g,%g)", n, w[0], w[1], dx, dy)
		}
	}
}

func TestLayoutCells(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	cfg.Origin = nameplate.P(10, 20)
	cells := []Cell{Dots(1), Blank, Dots(2, 6)}
	dots := Layout(cells, cfg, 3)
	assert.Len(t, dots, 3)
	assert.Equal(t, Dot{X: 8.75, Y: 22.5, Z: 3, Diameter: 1.5, Height: 0.5, Cell: 0, Number: 1}, dots[0])
	// the blank cell still advances the cursor
	assert.InDelta(t, 10+12-1.25, dots[1].X, 1e-12)
	assert.InDelta(t, 20.0, dots[1].Y, 1e-12)
	assert.InDelta(t, 10+12+1.25, dots[2].X, 1e-12)
	assert.InDelta(t, 17.5, dots[2].Y, 1e-12)
	assert.Equal(t, 2, dots[2].Cell)
	assert.Equal(t, 6, dots[2].Number)
}

func TestTextWidthAndHeight(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	for _, text := range []string{"", "a", "Abc", "Room 12", "#"} {
		assert.Equal(t, float64(len(Transcribe(text)))*cfg.CellSpacing, TextWidth(text, cfg))
	}
	assert.Equal(t, 6.5, LineHeight(cfg))
}

func TestLayoutLines(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	lines := LayoutLines([]string{"a", "a"}, cfg, 2)
	assert.Len(t, lines, 2)
	assert.InDelta(t, lines[0][0].Y-cfg.LineSpacing, lines[1][0].Y, 1e-12)
	assert.Equal(t, lines[0][0].X, lines[1][0].X)
}

func TestBounds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, ok := Bounds(nil)
	assert.False(t, ok)
	dots := LayoutText("l", DefaultConfig(), 0) // dots 1,2,3
	bb, ok := Bounds(dots)
	assert.True(t, ok)
	assert.InDelta(t, 1.5, bb.Width(), 1e-12)
	assert.InDelta(t, 6.5, bb.Height(), 1e-12)
}

func TestConfigValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.NoError(t, DefaultConfig().Validate())
	cfg := DefaultConfig()
	cfg.CellSpacing = 0
	assert.True(t, errors.Is(cfg.Validate(), ErrConfig))
}

func TestLayoutIdempotence(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	assert.Equal(t, LayoutText("Suite 42", cfg, 3), LayoutText("Suite 42", cfg, 3))
}
