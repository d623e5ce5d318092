package nameplate

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	assert.InDelta(t, 180.0, Deg(Rad(180)), 1e-12)
	assert.Equal(t, 0.0, Zap(-3e-15))
	assert.Equal(t, 0.5, Zap(0.5))
	assert.Equal(t, P(0, 50), P(3e-15, 50).Zap())
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.Equal(Origin) {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.InDelta(t, 5.0, P(0, 0).Dist(P(3, 4)), 1e-12)
}

func TestPolar(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !Polar(2, 90).Equal(P(0, 2)) {
		t.Errorf("Expected polar(2,90°) to be (0,2), is %v", Polar(2, 90))
	}
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).Equal(Origin) {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180).Shifted(P(1, 0)).Equal(Origin) {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestPlacementTransform(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := Placement(P(10, 5), 90)
	// (1,0) rotated by 90° is (0,1), then moved by (10,5)
	got := m.Transform(P(1, 0))
	assert.True(t, got.Equal(P(10, 6)), "got %v", got)
	assert.Equal(t, Identity().Transform(P(3, 4)), P(3, 4))
}

func TestRecorder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var rec Recorder
	Report(&rec, Failure{Unit: "metrics", Index: 2, Char: 'x', Err: errors.New("no glyph")})
	Report(nil, Failure{Unit: "metrics"})
	assert.Equal(t, 1, rec.Len())
	assert.Equal(t, `metrics #2 'x': no glyph`, rec.Failures[0].String())
}
