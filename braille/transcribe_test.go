package braille

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestCellBasics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := Dots(1, 2, 5)
	assert.Equal(t, []int{1, 2, 5}, c.Dots())
	assert.True(t, c.Has(5))
	assert.False(t, c.Has(3))
	assert.Equal(t, "{1,2,5}", c.String())
	assert.Equal(t, Dots(6), CapitalSign)
	assert.Equal(t, Dots(3, 4, 5, 6), NumberSign)
	assert.True(t, Blank.IsBlank())
	assert.Equal(t, "{}", Blank.String())
	assert.Equal(t, Blank, Dots(0, 7))
}

func TestAlphabet(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, x := range []struct {
		r    rune
		dots []int
	}{
		{'a', []int{1}}, {'j', []int{2, 4, 5}}, {'k', []int{1, 3}},
		{'t', []int{2, 3, 4, 5}}, {'w', []int{2, 4, 5, 6}}, {'z', []int{1, 3, 5, 6}},
		{'.', []int{2, 5, 6}}, {',', []int{2}}, {'?', []int{2, 3, 6}},
		{'!', []int{2, 3, 5}}, {'\'', []int{3}}, {'-', []int{3, 6}},
		{':', []int{2, 5}}, {';', []int{2, 3}},
	} {
		c, ok := Lookup(x.r)
		if !ok {
			t.Errorf("no cell for %q", x.r)
			continue
		}
		assert.Equal(t, x.dots, c.Dots(), "dots of %q", x.r)
	}
	// digits reuse a…j
	letters := "jabcdefghi"
	for i, d := range "0123456789" {
		cd, _ := Lookup(d)
		cl, _ := Lookup(rune(letters[i]))
		assert.Equal(t, cl, cd, "digit %q", d)
	}
	_, ok := Lookup('A')
	assert.False(t, ok)
}

func TestCapitalIndicator(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, _ := Lookup('a')
	b, _ := Lookup('b')
	c, _ := Lookup('c')
	assert.Equal(t, []Cell{CapitalSign, a, b, c}, Transcribe("Abc"))
	// every capital gets its own indicator
	assert.Equal(t, []Cell{CapitalSign, a, CapitalSign, b}, Transcribe("AB"))
}

func TestNumberIndicator(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	one, _ := Lookup('1')
	two, _ := Lookup('2')
	a, _ := Lookup('a')
	assert.Equal(t, []Cell{NumberSign, one, two}, Transcribe("12"))
	assert.Equal(t, []Cell{a, NumberSign, one}, Transcribe("a1"))
	// a space or any other character ends the number run
	assert.Equal(t, []Cell{NumberSign, one, Blank, NumberSign, two}, Transcribe("1 2"))
	assert.Equal(t, []Cell{NumberSign, one, NumberSign, two}, Transcribe("1~2"))
}

func TestOnlyASCIIDigitsAreNumbers(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	one, _ := Lookup('1')
	two, _ := Lookup('2')
	a, _ := Lookup('a')
	assert.Equal(t, []Cell{a}, Transcribe("a²"))
	assert.Empty(t, Transcribe("١٢"))
	// a superscript digit is dropped and ends the run
	assert.Equal(t, []Cell{NumberSign, one, NumberSign, two}, Transcribe("1²2"))
	assert.Equal(t, "⠁", Preview("a²"))
}

func TestUnknownCharactersDropped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, _ := Lookup('a')
	assert.Equal(t, []Cell{a}, Transcribe("#a@"))
	assert.Empty(t, Transcribe("Ä€"))
	assert.Empty(t, Transcribe(""))
}

func TestPreview(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "⠁", Preview("a"))
	assert.Equal(t, "⠠⠁ ⠼⠁⠃", Preview("A 12"))
	assert.NotContains(t, Preview("a b"), "⠀")
	// preview and transcription agree cell by cell
	text := "Room 101, Floor 3!"
	cells := Transcribe(text)
	runes := []rune(Preview(text))
	assert.Len(t, runes, len(cells))
	for i, c := range cells {
		if c.IsBlank() {
			assert.Equal(t, ' ', runes[i])
			continue
		}
		assert.Equal(t, c.Rune(), runes[i])
	}
}
