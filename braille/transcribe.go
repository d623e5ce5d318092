package braille

import "unicode"

// alphabet maps characters to Grade-1 cells. It is never modified after
// package initialization. Digits carry their own keys: 1…9 and 0 reuse the
// patterns of a…j.
var alphabet = map[rune]Cell{
	'a': Dots(1),
	'b': Dots(1, 2),
	'c': Dots(1, 4),
	'd': Dots(1, 4, 5),
	'e': Dots(1, 5),
	'f': Dots(1, 2, 4),
	'g': Dots(1, 2, 4, 5),
	'h': Dots(1, 2, 5),
	'i': Dots(2, 4),
	'j': Dots(2, 4, 5),
	'k': Dots(1, 3),
	'l': Dots(1, 2, 3),
	'm': Dots(1, 3, 4),
	'n': Dots(1, 3, 4, 5),
	'o': Dots(1, 3, 5),
	'p': Dots(1, 2, 3, 4),
	'q': Dots(1, 2, 3, 4, 5),
	'r': Dots(1, 2, 3, 5),
	's': Dots(2, 3, 4),
	't': Dots(2, 3, 4, 5),
	'u': Dots(1, 3, 6),
	'v': Dots(1, 2, 3, 6),
	'w': Dots(2, 4, 5, 6),
	'x': Dots(1, 3, 4, 6),
	'y': Dots(1, 3, 4, 5, 6),
	'z': Dots(1, 3, 5, 6),
	// digits, after a number sign
	'1': Dots(1),
	'2': Dots(1, 2),
	'3': Dots(1, 4),
	'4': Dots(1, 4, 5),
	'5': Dots(1, 5),
	'6': Dots(1, 2, 4),
	'7': Dots(1, 2, 4, 5),
	'8': Dots(1, 2, 5),
	'9': Dots(2, 4),
	'0': Dots(2, 4, 5),
	// punctuation
	'.':  Dots(2, 5, 6),
	',':  Dots(2),
	'?':  Dots(2, 3, 6),
	'!':  Dots(2, 3, 5),
	'\'': Dots(3),
	'-':  Dots(3, 6),
	':':  Dots(2, 5),
	';':  Dots(2, 3),
}

// Lookup returns the cell for a single character, without indicators.
// Uppercase letters are not found; use Transcribe for text.
func Lookup(r rune) (Cell, bool) {
	if r == ' ' {
		return Blank, true
	}
	c, ok := alphabet[r]
	return c, ok
}

// walk runs the transcription state machine over text and calls emit for
// every produced cell, together with the character which caused it.
// Spaces emit Blank; indicator cells are emitted with the character they
// precede.
func walk(text string, emit func(c Cell, src rune)) {
	inNumber := false
	for _, r := range text {
		if r == ' ' {
			emit(Blank, r)
			inNumber = false
			continue
		}
		if r >= '0' && r <= '9' {
			if !inNumber {
				emit(NumberSign, r)
				inNumber = true
			}
			emit(alphabet[r], r)
			continue
		}
		inNumber = false
		lower := unicode.ToLower(r)
		c, ok := alphabet[lower]
		if !ok {
			tracer().Debugf("no Braille cell for %q, dropped", r)
			continue
		}
		if unicode.IsUpper(r) {
			emit(CapitalSign, r)
		}
		emit(c, r)
	}
}

// Transcribe converts text to Grade-1 Braille cells. Characters without a
// Braille equivalent are silently omitted.
func Transcribe(text string) []Cell {
	var cells []Cell
	walk(text, func(c Cell, _ rune) {
		cells = append(cells, c)
	})
	return cells
}

// Preview renders text as Unicode Braille patterns, for display without
// geometry. Spaces stay plain spaces; U+2800 never appears.
func Preview(text string) string {
	buf := make([]rune, 0, len(text))
	walk(text, func(c Cell, src rune) {
		if src == ' ' {
			buf = append(buf, ' ')
			return
		}
		buf = append(buf, c.Rune())
	})
	return string(buf)
}
