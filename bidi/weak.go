package bidi

// resolveWeak applies W1-W7 in two passes over the non-sentinel runs,
// since the rule dependencies (W1<->W2, W4<->W5<->W7) do not factor into
// a single left-to-right sweep. See §4.4 and §9 for the cross-pass
// bookkeeping this relies on.
func resolveWeak(sot *run, baseDir BidiType) {
	resolveWeakPass1(sot, baseDir)
	resolveWeakPass2(sot, baseDir)
	compactNeutrals(sot)
}

// resolveWeakPass1 applies W1 (NSM) and W2 (EN after AL), collapsing
// their mutual dependency by preemptively rewriting a following NSM run
// when W2 fires.
func resolveWeakPass1(sot *run, baseDir BidiType) {
	lastStrong := baseDir
	for r := sot.next; r.next != nil; r = r.next {
		prevType := r.prev.typ
		thisType := r.typ
		nextType := r.next.typ

		if prevType.IsStrong() {
			lastStrong = prevType
		}

		switch {
		case thisType == NSM:
			// W1: an NSM takes the type of its predecessor, merging into
			// it when they already share a level (the common case); when
			// the NSM crosses a level boundary it cannot be merged, so
			// just adopt the predecessor's type.
			if r.prev.level == r.level {
				r = mergeWithPrev(r)
			} else {
				r.typ = prevType
			}
		case thisType == EN && lastStrong == AL:
			// W2: a European number after an Arabic letter becomes an
			// Arabic number. Preemptively propagate to a following NSM so
			// W1's merge (already applied above, in document order) sees
			// the final type rather than EN.
			r.typ = AN
			if nextType == NSM {
				r.next.typ = AN
			}
		}
	}
}

// resolveWeakPass2 applies W3 (AL -> RTL), W4 (single separator between
// numbers), W5 (ET adjacent to EN), W6 (leftover separators/terminators
// -> ON) and W7 (EN after LTR -> LTR).
func resolveWeakPass2(sot *run, baseDir BidiType) {
	lastStrong := baseDir
	w4 := true
	prevTypeOrg := ON

	for r := sot.next; r.next != nil; r = r.next {
		prevType := r.prev.typ
		thisType := r.typ
		nextType := r.next.typ

		if prevType.IsStrong() {
			lastStrong = prevType
		}

		if thisType == AL {
			r.typ = RTL
			w4 = true
			prevTypeOrg = ON
			continue
		}

		if w4 && r.len == 1 && thisType.IsESOrCS() &&
			prevTypeOrg.IsNumber() && prevTypeOrg == nextType &&
			(prevTypeOrg == EN || thisType == CS) {
			r.typ = prevType
			thisType = r.typ
		}
		w4 = true

		if thisType == ET && (prevTypeOrg == EN || nextType == EN) {
			r.typ = EN
			w4 = false
			thisType = r.typ
		}

		if thisType.IsNumberSeparatorOrTerminator() {
			r.typ = ON
		}

		if thisType == EN && lastStrong == LTR {
			r.typ = LTR
			if r.level == r.next.level {
				prevTypeOrg = EN
			} else {
				prevTypeOrg = ON
			}
		} else {
			prevTypeOrg = r.typ
		}
	}
}
