package nameplate

import "fmt"

// Failure records a unit of layout work which failed without aborting the
// whole operation, e.g. a glyph which could not be measured.
type Failure struct {
	Unit  string // engine unit, e.g. "metrics" or "glyph"
	Index int    // position of the unit in the input
	Char  rune   // character concerned, 0 if none
	Err   error
}

func (f Failure) String() string {
	if f.Char != 0 {
		return fmt.Sprintf("%s #%d %q: %v", f.Unit, f.Index, f.Char, f.Err)
	}
	return fmt.Sprintf("%s #%d: %v", f.Unit, f.Index, f.Err)
}

// Diagnostics is an optional sink for unit failures. Engines accept one
// per call; a nil sink means failures are only traced.
type Diagnostics interface {
	Report(Failure)
}

// Recorder is a Diagnostics which collects failures in order of appearance.
// The zero value is ready to use.
type Recorder struct {
	Failures []Failure
}

// Report appends f.
func (r *Recorder) Report(f Failure) {
	r.Failures = append(r.Failures, f)
}

// Len returns the number of recorded failures.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Failures)
}

// Report sends f to d, if d is non-nil, and traces it.
func Report(d Diagnostics, f Failure) {
	tracer().Infof("layout unit failed: %s", f)
	if d != nil {
		d.Report(f)
	}
}
