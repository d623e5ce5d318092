package arctext

import (
	"fmt"
	"math"

	"github.com/npillmayer/nameplate"
)

// === Rotation Modes ========================================================

type rotationKind int8

const (
	follow rotationKind = iota
	upright
	fixed
)

// RotationMode tells how characters on a path are rotated.
// The zero value is Follow.
type RotationMode struct {
	kind  rotationKind
	angle float64
}

var (
	// Follow rotates characters along the path's tangent.
	Follow = RotationMode{kind: follow}
	// Upright leaves characters unrotated.
	Upright = RotationMode{kind: upright}
)

// Fixed rotates every character by deg degrees.
func Fixed(deg float64) RotationMode {
	return RotationMode{kind: fixed, angle: deg}
}

func (m RotationMode) String() string {
	switch m.kind {
	case upright:
		return "upright"
	case fixed:
		return fmt.Sprintf("fixed(%g)", m.angle)
	}
	return "follow"
}

func (m RotationMode) rotation(tangent float64) float64 {
	switch m.kind {
	case upright:
		return 0
	case fixed:
		return m.angle
	}
	return tangent
}

// === Wave ==================================================================

// WaveSpec describes a sinusoidal text baseline, centered at the origin.
type WaveSpec struct {
	FontSize  float64
	Amplitude float64 // wave height in mm
	Frequency float64 // cycles per 100 mm
	Rotation  RotationMode
}

// Wave places the visible characters of text on a sine wave. Characters
// are spaced evenly at FallbackWidth × font size; spaces take up a slot
// but are not placed.
func Wave(text string, ws WaveSpec) []Placement {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	step := ws.FontSize * FallbackWidth
	n := float64(len(runes))
	k := ws.Frequency * 2 * math.Pi / 100
	var placements []Placement
	for i, r := range runes {
		if r == ' ' {
			continue
		}
		x := (float64(i) - n/2) * step
		phase := x * k
		slope := ws.Amplitude * k * math.Cos(phase)
		placements = append(placements, Placement{
			Char:     r,
			Index:    i,
			X:        x,
			Y:        ws.Amplitude * math.Sin(phase),
			Rotation: ws.Rotation.rotation(nameplate.Deg(math.Atan(slope))),
		})
	}
	return placements
}

// === Polyline ==============================================================

// Along places the visible characters of text along a polyline, evenly
// distributed by arc length from the first to the last point. At least
// two points are needed.
func Along(text string, points []nameplate.Pair, mode RotationMode) []Placement {
	runes := []rune(text)
	if len(runes) == 0 || len(points) < 2 {
		return nil
	}
	lengths := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		lengths[i] = lengths[i-1] + points[i-1].Dist(points[i])
	}
	total := lengths[len(lengths)-1]
	var placements []Placement
	for i, r := range runes {
		if r == ' ' {
			continue
		}
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		target := t * total
		seg := 0
		for j := 1; j < len(lengths); j++ {
			if lengths[j] >= target {
				seg = j - 1
				break
			}
		}
		p1, p2 := points[seg], points[seg+1]
		u := 0.0
		if d := lengths[seg+1] - lengths[seg]; d > 0 {
			u = (target - lengths[seg]) / d
		}
		pos := p1 + nameplate.P(u*(p2.X()-p1.X()), u*(p2.Y()-p1.Y()))
		tangent := nameplate.Deg(math.Atan2(p2.Y()-p1.Y(), p2.X()-p1.X()))
		placements = append(placements, Placement{
			Char:     r,
			Index:    i,
			X:        pos.X(),
			Y:        pos.Y(),
			Rotation: mode.rotation(tangent),
		})
	}
	return placements
}
