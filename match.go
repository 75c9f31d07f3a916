package bytekiller

// match is a back-reference to data that follows the current position.
// The decoder rebuilds the buffer back to front, so the referenced bytes are
// already in place when the copy runs.
type match struct {
	offset int // distance forward from the current position
	length int // 2..MaxMatch; 0 or 1 means no match
	class  int // index into matchClasses
}

// classify returns the class for a run length >= 2, capping long runs at MaxMatch.
func classify(length int) (class, capped int) {
	if length > 4 {
		return classLong, min(length, MaxMatch)
	}

	return length - 2, length
}

// findMatch scans src[p+1:] up to width bytes ahead for the longest run that
// repeats src[p:]. Only a strictly longer run replaces the current best, so
// the nearest of equally long runs wins. A run whose offset does not fit its
// class is dropped outright; shorter classes are not tried for it. The scan
// resumes after each probed run rather than at the next byte.
func findMatch(src []byte, p, width int) match {
	best := match{length: 1}

	scanEnd := p + width
	if scanEnd >= len(src) {
		scanEnd = len(src) - 1
	}

	for q := p + 1; q < scanEnd; {
		if src[p] != src[q] || src[p+1] != src[q+1] {
			q++
			continue
		}

		n := 0
		for q+n < scanEnd && src[p+n] == src[q+n] {
			n++
		}

		// The raw length is compared against the capped best, and a run that
		// wins the comparison is skipped by its capped length.
		if n > best.length {
			offset := q - p
			class, capped := classify(n)
			if offset < matchClasses[class].maxOffset {
				best = match{offset: offset, length: capped, class: class}
			}
			n = capped
		}

		q += n
	}

	return best
}
