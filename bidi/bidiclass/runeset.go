package bidiclass

// Compact rune set, adapted from the font-coverage bitmap used to record
// which code points a font's cmap supports: a rune is split into a page
// (its bits above the low byte) and a bit position within that page, so
// a handful of pages cover the scattered punctuation this package cares
// about without a page per rune.

// pageSet is a 256-bit membership bitmap for one page.
type pageSet [8]uint32

type runePage struct {
	ref uint16
	set pageSet
}

// RuneSet is a sorted-by-page compact set of runes, queried with
// Contains. It is built once (see MirrorableRunes) and never mutated
// concurrently with a read.
type RuneSet []runePage

// findPagePos returns the index of the page ref within rs, or the
// negative of (insertion point + 1) if ref has no page yet.
func (rs RuneSet) findPagePos(ref uint16) int {
	low, high := 0, len(rs)-1
	for low <= high {
		mid := (low + high) >> 1
		switch {
		case rs[mid].ref == ref:
			return mid
		case rs[mid].ref < ref:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return -(low + 1)
}

// Add inserts r into the set.
func (rs *RuneSet) Add(r rune) {
	ref := uint16(r >> 8)
	pos := rs.findPagePos(ref)
	if pos < 0 {
		pos = -pos - 1
		*rs = append(*rs, runePage{})
		copy((*rs)[pos+1:], (*rs)[pos:])
		(*rs)[pos] = runePage{ref: ref}
	}
	b := &(*rs)[pos].set[(r&0xff)>>5]
	*b |= 1 << (r & 0x1f)
}

// Contains reports whether r was added to the set.
func (rs RuneSet) Contains(r rune) bool {
	pos := rs.findPagePos(uint16(r >> 8))
	if pos < 0 {
		return false
	}
	leaf := rs[pos].set
	return leaf[(r&0xff)>>5]&(1<<(r&0x1f)) != 0
}

// mirrorableRunes is the compact-set counterpart of mirrorPairs, built
// once so Mirror can reject the common unmirrored rune without a map
// lookup.
var mirrorableRunes RuneSet

func init() {
	for r := range mirrorPairs {
		mirrorableRunes.Add(r)
	}
}

// MirrorableRunes reports whether r has an entry in Mirror's table.
func MirrorableRunes(r rune) bool {
	return mirrorableRunes.Contains(r)
}
