package bytealg

import "bytes"

// Two-Way string matching (Crochemore & Perrin, Two-way string-matching,
// Journal of the ACM 38(3):651-675, 1991).
//
// The needle is split at a critical position computed from its maximal
// suffixes under two byte orderings. The matcher then scans the right
// half forward and the left half backward, shifting by the period on a
// full match failure. When the needle has a border matching the shift
// length, the memoized variant refuses to re-examine the prefix already
// matched, which keeps the worst case linear.
//
// Positions are signed throughout: the critical position may be -1, and
// len(h)-len(n) may go negative on tiny inputs.

// factorization is the precomputed split of a needle: the critical
// position (index at which the local period equals the period) and that
// period distance.
type factorization struct {
	crit   int
	period int
}

// maximalSuffix computes the start of the maximal suffix of needle under
// the natural byte order, and the period of the repetition it rides.
func maximalSuffix(needle []byte) factorization {
	suff, period := -1, 1
	last, rest := 0, 1
	for last+rest < len(needle) {
		a, b := needle[last+rest], needle[suff+rest]
		switch {
		case a < b:
			last += rest
			rest = 1
			period = last - suff
		case a == b:
			if rest != period {
				rest++
			} else {
				last += period
				rest = 1
			}
		default:
			suff = last
			last = suff + 1
			rest, period = 1, 1
		}
	}
	return factorization{crit: suff, period: period}
}

// maximalSuffixRev is maximalSuffix under the reversed byte order.
func maximalSuffixRev(needle []byte) factorization {
	suff, period := -1, 1
	last, rest := 0, 1
	for last+rest < len(needle) {
		a, b := needle[last+rest], needle[suff+rest]
		switch {
		case a > b:
			last += rest
			rest = 1
			period = last - suff
		case a == b:
			if rest != period {
				rest++
			} else {
				last += period
				rest = 1
			}
		default:
			suff = last
			last = suff + 1
			rest, period = 1, 1
		}
	}
	return factorization{crit: suff, period: period}
}

// indexTwoWay returns the first start offset of needle in haystack, or
// -1. Callers guarantee 0 < len(n) <= len(h).
func indexTwoWay(h, n []byte) int {
	s := maximalSuffix(n)
	r := maximalSuffixRev(n)
	w := r
	if s.crit > r.crit {
		w = s
	}
	// A border exists when the needle prefix up to the critical position
	// reappears one period later; that unlocks memoization.
	if w.crit+1+w.period <= len(n) && bytes.Equal(n[:w.crit+1], n[w.period:w.period+w.crit+1]) {
		return indexMemoized(h, n, w)
	}
	return indexNormal(h, n, w)
}

func indexMemoized(h, n []byte, f factorization) int {
	lpos := 0
	shift := -1
	for lpos <= len(h)-len(n) {
		rpos := max(f.crit, shift) + 1
		for rpos < len(n) && n[rpos] == h[rpos+lpos] {
			rpos++
		}
		if rpos < len(n) {
			lpos += rpos - f.crit
			shift = -1
			continue
		}
		rpos = f.crit
		for rpos > shift && n[rpos] == h[rpos+lpos] {
			rpos--
		}
		if rpos <= shift {
			return lpos
		}
		lpos += f.period
		// A prefix of the needle coincides with the text across this
		// shift; remember how far the next left scan may stop early.
		shift = len(n) - f.period - 1
	}
	return -1
}

func indexNormal(h, n []byte, f factorization) int {
	period := max(f.crit+1, len(n)-f.crit-1) + 1
	lpos := 0
	for lpos <= len(h)-len(n) {
		rpos := f.crit + 1
		for rpos < len(n) && n[rpos] == h[rpos+lpos] {
			rpos++
		}
		if rpos < len(n) {
			lpos += rpos - f.crit
			continue
		}
		rpos = f.crit
		for rpos >= 0 && n[rpos] == h[rpos+lpos] {
			rpos--
		}
		if rpos < 0 {
			return lpos
		}
		lpos += period
	}
	return -1
}
