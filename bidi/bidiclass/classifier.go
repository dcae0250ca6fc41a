// Package bidiclass is a reference Classifier/Mirror pair for the bidi
// package, backed by golang.org/x/text/unicode/bidi for class lookup. It
// treats a Glyph as a rune: callers working from raw code points (rather
// than shaped font glyphs) can pass Classify and Mirror directly to
// bidi.ComputeEmbeddingLevels / bidi.ReorderGlyphs.
package bidiclass

import (
	"golang.org/x/text/unicode/bidi"

	bd "github.com/boxesandglue/bidi/bidi"
)

// Classify returns the Unicode Bidi class of g, treated as a rune, as a
// bd.BidiType. Classes outside this core's scope (explicit embedding
// codes, isolates, paragraph separator, segment separator) collapse to
// the neutral types spec'd for a pre-resolved input: B and S map to BS
// and SS respectively so callers get stable run boundaries even though
// this package never interprets them, and the directional-formatting
// classes map to BN since §4.3 treats embedding codes as already
// resolved away.
func Classify(g bd.Glyph) bd.BidiType {
	props, _ := bidi.LookupRune(rune(g))
	switch props.Class() {
	case bidi.L:
		return bd.LTR
	case bidi.R:
		return bd.RTL
	case bidi.AL:
		return bd.AL
	case bidi.EN:
		return bd.EN
	case bidi.AN:
		return bd.AN
	case bidi.ES:
		return bd.ES
	case bidi.ET:
		return bd.ET
	case bidi.CS:
		return bd.CS
	case bidi.NSM:
		return bd.NSM
	case bidi.BN:
		return bd.BN
	case bidi.WS:
		return bd.WS
	case bidi.B:
		return bd.BS
	case bidi.S:
		return bd.SS
	case bidi.ON:
		return bd.ON
	default:
		// LRO, RLO, LRE, RLE, PDF, LRI, RLI, FSI, PDI and Control: the
		// explicit-formatting classes this core's §4.3 leaves unresolved.
		return bd.BN
	}
}

// Mirror looks up g's mirror-image partner, treated as a rune, in a
// small built-in table of paired punctuation. It reports false for any
// rune not in that table, including runes the Unicode Bidi_Mirrored
// property marks as mirrored but that have no distinct paired
// counterpart (x/text/unicode/bidi does not expose the mirroring glyph
// itself, only bracket open/close classification).
//
// It consults the compact MirrorableRunes set first so the common case
// of an unmirrored glyph (the vast majority of runes in any paragraph)
// never touches the map at all.
func Mirror(g bd.Glyph) (bd.Glyph, bool) {
	r := rune(g)
	if !MirrorableRunes(r) {
		return g, false
	}
	m, ok := mirrorPairs[r]
	return bd.Glyph(m), ok
}

// mirrorPairs holds common paired punctuation, mostly pairs from
// Unicode's BidiMirroring.txt; the curly quotation-mark pairs are not in
// that file and are included here as well. Each entry is listed once
// and its reverse is derived in init so the table stays half the size.
var mirrorPairs = map[rune]rune{
	'(':      ')',
	'[':      ']',
	'{':      '}',
	'<':      '>',
	'‹': '›', // single angle quotation marks
	'«': '»', // double angle quotation marks « »
	'‘': '’', // single quotation marks (paired in RTL contexts)
	'“': '”', // double quotation marks
	'〈': '〉', // CJK angle brackets
	'《': '》', // CJK double angle brackets
	'≤': '≥', // ≤ ≥
	'≦': '≧', // ≦ ≧
	'≲': '≳', // ≲ ≳
}

func init() {
	for a, b := range mirrorPairs {
		if _, ok := mirrorPairs[b]; !ok {
			mirrorPairs[b] = a
		}
	}
}
