package bidi

// resolveNeutral applies N1 and N2: a neutral run takes its neighbours'
// type if they agree (treating EN/AN as RTL via NumberToRTL), otherwise
// it takes the direction implied by its own embedding level. Only a
// run's type changes here; level, pos and len are untouched.
func resolveNeutral(sot *run) {
	for r := sot.next; r.next != nil; r = r.next {
		prevType := NumberToRTL(r.prev.typ)
		thisType := NumberToRTL(r.typ)
		nextType := NumberToRTL(r.next.typ)

		if thisType.IsNeutral() {
			if prevType == nextType {
				r.typ = prevType // N1
			} else {
				r.typ = LevelToDir(r.level) // N2
			}
		}
	}
	compactList(sot)
}
