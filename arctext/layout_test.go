package arctext

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/nameplate"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func fixedWidth(w float64) Metrics {
	return func(rune) (float64, error) { return w, nil }
}

func testspec(text string, dir Direction) Spec {
	return Spec{
		Text:      text,
		Font:      "test",
		FontSize:  10,
		Depth:     2,
		Radius:    50,
		Span:      90,
		Start:     90,
		Direction: dir,
	}
}

func onArc(t *testing.T, pl Placement, radius, angle float64) {
	t.Helper()
	assert.InDelta(t, radius*math.Cos(nameplate.Rad(angle)), pl.X, 1e-9, "x of %v", pl)
	assert.InDelta(t, radius*math.Sin(nameplate.Rad(angle)), pl.Y, 1e-9, "y of %v", pl)
}

func TestCounterClockwise(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl, err := Layout(testspec("AB", CounterClockwise), fixedWidth(4))
	assert.NoError(t, err)
	assert.Len(t, pl, 2)
	// widths 5+5, anchor 135°, walking towards decreasing angles
	onArc(t, pl[0], 50, 112.5)
	onArc(t, pl[1], 50, 67.5)
	assert.InDelta(t, 22.5, pl[0].Rotation, 1e-9)
	assert.InDelta(t, -22.5, pl[1].Rotation, 1e-9)
}

func TestClockwise(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl, err := Layout(testspec("AB", Clockwise), fixedWidth(4))
	assert.NoError(t, err)
	assert.Len(t, pl, 2)
	onArc(t, pl[0], 50, 67.5)
	onArc(t, pl[1], 50, 112.5)
	assert.InDelta(t, 157.5, pl[0].Rotation, 1e-9)
	assert.InDelta(t, 202.5, pl[1].Rotation, 1e-9)
}

func TestSpacesAreNotPlaced(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl, err := Layout(testspec("A B  C", CounterClockwise), fixedWidth(4))
	assert.NoError(t, err)
	if len(pl) != 3 {
		t.Fatalf("expected 3 placements, got %d", len(pl))
	}
	for i, want := range []struct {
		r rune
		i int
	}{{'A', 0}, {'B', 2}, {'C', 5}} {
		assert.Equal(t, want.r, pl[i].Char)
		assert.Equal(t, want.i, pl[i].Index)
	}
	// widths: 5, 3, 5, 3, 3, 5 => total 24; 'B' centered at 10.5
	onArc(t, pl[1], 50, 135-10.5/24*90)
}

func TestZeroSpanCollapses(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec := testspec("ABC", CounterClockwise)
	spec.Span = 0
	spec.Center = nameplate.P(3, 4)
	pl, err := Layout(spec, fixedWidth(4))
	assert.NoError(t, err)
	assert.Len(t, pl, 3)
	for _, p := range pl {
		assert.InDelta(t, 3.0, p.X, 1e-9)
		assert.InDelta(t, 54.0, p.Y, 1e-9)
		assert.InDelta(t, 0.0, p.Rotation, 1e-9)
	}
}

func TestTopOfArcIsExact(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec := testspec("A", CounterClockwise)
	pl := MustLayout(spec, fixedWidth(4))
	// cos 90° is not exactly 0 in floating point
	assert.Equal(t, 0.0, pl[0].X)
	assert.Equal(t, 50.0, pl[0].Y)
}

func TestZeroTotalWidth(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// measured width exactly cancels the letter gap
	pl, err := Layout(testspec("AB", CounterClockwise), fixedWidth(-1))
	assert.NoError(t, err)
	assert.Len(t, pl, 2)
	for _, p := range pl {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "placement %v", p)
		onArc(t, p, 50, 135)
	}
}

func TestMetricsFallback(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	metrics := func(r rune) (float64, error) {
		if r == 'B' {
			return 0, errors.New("no glyph")
		}
		return 4, nil
	}
	var rec nameplate.Recorder
	spec := testspec("AB", CounterClockwise)
	widths := Widths(spec, metrics)
	assert.Equal(t, []float64{5, 6}, widths)
	pl, err := Layout(spec, metrics, WithDiagnostics(&rec))
	assert.NoError(t, err)
	assert.Len(t, pl, 2)
	assert.Equal(t, 1, rec.Len())
	assert.Equal(t, "metrics", rec.Failures[0].Unit)
	assert.Equal(t, 'B', rec.Failures[0].Char)
	onArc(t, pl[1], 50, 135-8.0/11*90)
}

func TestRejectedGlyphIsSkipped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var rec nameplate.Recorder
	check := func(r rune) error {
		if r == 'B' {
			return errors.New("kernel cannot render")
		}
		return nil
	}
	pl, err := Layout(testspec("ABC", CounterClockwise), fixedWidth(4),
		WithGlyphCheck(check), WithDiagnostics(&rec))
	assert.NoError(t, err)
	assert.Len(t, pl, 2)
	assert.Equal(t, 'C', pl[1].Char)
	assert.Equal(t, 1, rec.Len())
	// 'B' consumed no width, so 'C' sits where 'B' would have been
	onArc(t, pl[1], 50, 135-7.5/15*90)
}

func TestInvalidSpecs(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec := testspec("", CounterClockwise)
	_, err := Layout(spec, fixedWidth(4))
	assert.True(t, errors.Is(err, ErrEmptyText))
	spec = testspec("A", CounterClockwise)
	spec.Font = ""
	_, err = Layout(spec, fixedWidth(4))
	assert.True(t, errors.Is(err, ErrNoFont))
	spec = testspec("A", CounterClockwise)
	spec.Radius = 0
	pl, err := Layout(spec, fixedWidth(4))
	assert.True(t, errors.Is(err, ErrRadius))
	assert.Nil(t, pl)
	_, err = Layout(testspec("A", Clockwise), nil)
	assert.True(t, errors.Is(err, ErrNoMetrics))
}

func TestMustLayoutPanics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	MustLayout(testspec("", Clockwise), fixedWidth(1))
}

func TestIdempotence(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec := testspec("Hello, World", Clockwise)
	pl1 := MustLayout(spec, fixedWidth(3.3))
	pl2 := MustLayout(spec, fixedWidth(3.3))
	assert.Equal(t, pl1, pl2)
}

func TestArcScaleIsInformational(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec := testspec("AB", CounterClockwise)
	assert.InDelta(t, 50*math.Pi/2/10, ArcScale(spec, []float64{5, 5}), 1e-12)
	assert.Equal(t, 1.0, ArcScale(spec, nil))
	// doubling the radius leaves angular positions unchanged
	small := MustLayout(spec, fixedWidth(4))
	spec.Radius = 100
	large := MustLayout(spec, fixedWidth(4))
	assert.InDelta(t, small[0].Rotation, large[0].Rotation, 1e-12)
}

func TestPlacementTransform(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := Placement{Char: 'A', X: 10, Y: 0, Rotation: 90}
	p := pl.Transform().Transform(nameplate.P(1, 0))
	assert.True(t, p.Equal(nameplate.P(10, 1)), "got %v", p)
}

func TestBoundingBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec := testspec("A", CounterClockwise)
	spec.Center = nameplate.P(5, -5)
	bb := BoundingBox(spec)
	assert.Equal(t, -55.0, bb.Min.X)
	assert.Equal(t, 65.0, bb.Max.X)
	assert.Equal(t, 120.0, bb.Width())
}

func TestParseDirection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d, err := ParseDirection("CW")
	assert.NoError(t, err)
	assert.Equal(t, Clockwise, d)
	d, _ = ParseDirection("counterclockwise")
	assert.Equal(t, CounterClockwise, d)
	_, err = ParseDirection("sideways")
	assert.True(t, errors.Is(err, ErrDirection))
	b, _ := Clockwise.MarshalText()
	assert.Equal(t, "clockwise", string(b))
	var dir Direction
	assert.NoError(t, dir.UnmarshalText([]byte("cw")))
	assert.Equal(t, Clockwise, dir)
	assert.True(t, errors.Is(dir.UnmarshalText([]byte("up")), ErrDirection))
	assert.Equal(t, Clockwise, dir)
}
