package bidi

// reverseGlyphs reverses glyphs[pos : pos+length] in place.
func reverseGlyphs(glyphs []Glyph, pos, length int) {
	s := glyphs[pos : pos+length]
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// reorder implements L2: for i descending from maxLevel to 1, every
// maximal contiguous stretch of runs at level >= i is reversed as one
// block. Descending levels unwind nested structure back to its natural
// order; see §4.8 for why this yields the correct visual permutation.
//
// glyphs may be nil, in which case only reverse (when non-nil) is
// invoked per stretch; this is how ComputeEmbeddingLevels reorders a
// level array without touching a glyph buffer (§4.9 item 1).
func reorder(sot *run, maxLevel Level, glyphs []Glyph, reverse ReverseFunc) {
	for i := maxLevel; i > 0; i-- {
		for r := sot.next; r.next != nil; r = r.next {
			if r.level < i {
				continue
			}
			pos := r.pos
			length := r.len
			stretch := r.next
			for stretch.next != nil && stretch.level >= i {
				length += stretch.len
				stretch = stretch.next
			}
			r = stretch.prev

			if glyphs != nil {
				reverseGlyphs(glyphs, pos, length)
			}
			if reverse != nil {
				reverse(pos, length)
			}
		}
	}
}
