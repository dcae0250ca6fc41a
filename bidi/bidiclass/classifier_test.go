package bidiclass

import (
	"testing"

	bd "github.com/boxesandglue/bidi/bidi"
	tu "github.com/boxesandglue/bidi/testutils"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		r    rune
		want bd.BidiType
	}{
		{'a', bd.LTR},
		{'A', bd.LTR},
		{'0', bd.EN},
		{' ', bd.WS},
		{'!', bd.ON},
		{'ا', bd.AL},   // Arabic letter alef
		{'א', bd.RTL},  // Hebrew letter alef
		{'̀', bd.NSM},  // combining grave accent
		{'+', bd.ES},
		{'$', bd.ET},
		{',', bd.CS},
	}
	for _, c := range cases {
		if got := Classify(bd.Glyph(c.r)); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestMirrorRoundTrips(t *testing.T) {
	pairs := []rune{'(', ')', '[', ']', '{', '}', '<', '>'}
	for _, r := range pairs {
		m, ok := Mirror(bd.Glyph(r))
		tu.Assert(t, ok)
		back, ok := Mirror(m)
		tu.Assert(t, ok)
		tu.Assert(t, rune(back) == r)
	}
}

func TestMirrorUnmapped(t *testing.T) {
	_, ok := Mirror(bd.Glyph('a'))
	tu.Assert(t, !ok)
}

func TestMirrorableRunesMatchesTable(t *testing.T) {
	for r := range mirrorPairs {
		tu.Assert(t, MirrorableRunes(r))
	}
	tu.Assert(t, !MirrorableRunes('a'))
}
