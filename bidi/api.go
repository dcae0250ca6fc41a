package bidi

// resolve runs stages 1-6 of the pipeline (run builder through implicit
// resolution) and returns the run list together with the base direction,
// base level and the maximum level reached. It panics if classify is nil
// or length is negative: these are programmer errors per §7, not
// recoverable runtime conditions.
func resolve(glyphs []Glyph, length int, classify Classifier, pel ParagraphLevel) (sot *run, baseDir BidiType, baseLevel, maxLevel Level) {
	if classify == nil {
		panic("bidi: nil Classifier")
	}
	if length < 0 {
		panic("bidi: negative length")
	}

	sot = buildRuns(glyphs, length, classify)

	if pel == LTRLevel || pel == RTLLevel {
		baseLevel = Level(pel)
		baseDir = LevelToDir(baseLevel)
	} else {
		baseDir, baseLevel = resolveParagraph(sot)
	}

	resolveExplicit(sot, baseLevel)
	resolveWeak(sot, baseDir)
	resolveNeutral(sot)
	maxLevel = resolveImplicit(sot, baseLevel)

	return sot, baseDir, baseLevel, maxLevel
}

// ComputeEmbeddingLevels runs the full resolution pipeline (stages 1-6)
// over glyphs[:length] and writes each position's final embedding level
// into levels, which must have length >= length. It returns the maximum
// level reached (>= the paragraph base level).
//
// If visualOrder is true, levels itself is additionally reordered in
// place by running the L2 reorderer against it (with no glyph buffer),
// so that levels[i] describes the run now occupying visual position i
// rather than logical position i.
//
// If length is 0, ComputeEmbeddingLevels is a no-op and returns 0.
func ComputeEmbeddingLevels(glyphs []Glyph, length int, pel ParagraphLevel, classify Classifier, levels []Level, visualOrder bool) Level {
	if length == 0 {
		return 0
	}

	sot, _, _, maxLevel := resolve(glyphs, length, classify, pel)

	for r := sot.next; r.next != nil; r = r.next {
		for i := r.pos; i < r.pos+r.len; i++ {
			levels[i] = r.level
		}
	}

	if visualOrder {
		reorder(sot, maxLevel, nil, func(pos, n int) {
			reverseLevels(levels, pos, n)
		})
	}

	return maxLevel
}

// reverseLevels reverses levels[pos : pos+length] in place; it mirrors
// reverseGlyphs for the level-array reordering path.
func reverseLevels(levels []Level, pos, length int) {
	s := levels[pos : pos+length]
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// ReorderGlyphs runs the full pipeline (stages 1-8) over glyphs[:length],
// mutating glyphs in place into visual order and, where mirror is
// non-nil, substituting mirrored glyphs on odd-level runs (L4).
//
// reverse, if non-nil, is invoked once per contiguous stretch reversed
// during L2 with that stretch's (pos, length) in the original logical
// index space, so a caller can keep a parallel buffer (an index map, a
// level array, ...) aligned with the reordered glyphs. It returns the
// maximum level reached.
//
// If length is 0, ReorderGlyphs is a no-op and returns 0.
func ReorderGlyphs(glyphs []Glyph, length int, pel ParagraphLevel, classify Classifier, mirror Mirror, reverse ReverseFunc) Level {
	if length == 0 {
		return 0
	}

	sot, _, _, maxLevel := resolve(glyphs, length, classify, pel)

	resolveMirror(sot, glyphs, mirror)
	reorder(sot, maxLevel, glyphs, reverse)

	return maxLevel
}

// BaseDirection runs only the run builder and paragraph resolver
// (stages 1-2) and returns the paragraph's base direction (LTR or RTL),
// defaulting to LTR for an empty input or one with no strong character.
func BaseDirection(glyphs []Glyph, length int, classify Classifier) BidiType {
	if length == 0 {
		return LTR
	}
	if classify == nil {
		panic("bidi: nil Classifier")
	}
	sot := buildRuns(glyphs, length, classify)
	baseDir, _ := resolveParagraph(sot)
	return baseDir
}
