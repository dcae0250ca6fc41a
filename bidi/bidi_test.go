package bidi

// identityClassify treats a Glyph's numeric value as its own BidiType,
// which keeps these tests free of any charset-classification dependency:
// the test input *is* the type sequence.
func identityClassify(g Glyph) BidiType { return BidiType(g) }

func glyphs(types ...BidiType) []Glyph {
	gs := make([]Glyph, len(types))
	for i, t := range types {
		gs[i] = Glyph(t)
	}
	return gs
}

func levelsOf(l ...Level) []Level { return l }
