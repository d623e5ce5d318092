package braille

import (
	"strconv"
	"strings"
)

// Cell is a Braille cell, a set of raised dots. Dot n is represented by bit
// n-1, which is also the bit layout of the Unicode Braille patterns.
// The zero value is the blank cell.
type Cell uint8

// Blank is the empty cell, used for spaces.
const Blank Cell = 0

// Indicator cells.
const (
	CapitalSign Cell = 1 << 5                     // dot 6
	NumberSign  Cell = 1<<2 | 1<<3 | 1<<4 | 1<<5 // dots 3-4-5-6
)

const allDots Cell = 0x3f

// Dots creates a cell from dot numbers. Numbers outside 1…6 are ignored.
func Dots(numbers ...int) Cell {
	var c Cell
	for _, n := range numbers {
		if n >= 1 && n <= 6 {
			c |= 1 << (n - 1)
		}
	}
	return c
}

// Has is a predicate: is dot n raised?
func (c Cell) Has(n int) bool {
	return n >= 1 && n <= 6 && c&(1<<(n-1)) != 0
}

// IsBlank is a predicate: is this an empty cell?
func (c Cell) IsBlank() bool {
	return c&allDots == 0
}

// Dots returns the raised dots in ascending order.
func (c Cell) Dots() []int {
	var dots []int
	for n := 1; n <= 6; n++ {
		if c.Has(n) {
			dots = append(dots, n)
		}
	}
	return dots
}

// Rune returns the Unicode Braille pattern for c.
func (c Cell) Rune() rune {
	return rune(0x2800 + int(c&allDots))
}

// String returns the dot set, e.g. "{1,2,5}".
func (c Cell) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, n := range c.Dots() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte('}')
	return b.String()
}
