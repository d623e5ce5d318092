/*
Package braille transcribes text into Grade-1 (uncontracted) Braille and
lays out the dots of Braille cells on a plate.

A cell is a 2 × 3 dot matrix, numbered column-major:

	1 4
	2 5
	3 6

Transcription runs a small state machine over the text. Uppercase letters
are preceded by the capital sign (dot 6), runs of digits by a single
number sign (dots 3-4-5-6). Characters without a Braille equivalent are
dropped. The same state machine drives Preview, which renders cells as
Unicode Braille patterns (U+2800 block).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package braille

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'nameplate.braille'
func tracer() tracing.Trace {
	return tracing.Select("nameplate.braille")
}
