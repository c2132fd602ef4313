package bytealg

// Right-to-left Two-Way search. Rather than reversing buffers, the
// factorizations and the matcher index both strings from the end:
// position i here means needle[len(n)-i-1] and likewise for the
// haystack. The two factorizations use the same order tests as
// twoway.go over the end-relative indices, and the one with the larger
// critical position is chosen, as in the forward matcher. A match found at shift lpos maps back to the forward start offset
// len(h)-lpos-len(n).

func reverseMaximalSuffix(needle []byte) factorization {
	suff, period := -1, 1
	last, rest := 0, 1
	size := len(needle)
	for last+rest < size {
		a, b := needle[size-(last+rest)-1], needle[size-(suff+rest)-1]
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

func reverseMaximalSuffixRev(needle []byte) factorization {
	suff, period := -1, 1
	last, rest := 0, 1
	size := len(needle)
	for last+rest < size {
		a, b := needle[size-(last+rest)-1], needle[size-(suff+rest)-1]
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

// equalFromEnd reports whether the last length bytes of needle reappear
// period positions earlier, both runs read back to front.
func equalFromEnd(n []byte, period, length int) bool {
	for i := 0; i < length; i++ {
		if n[len(n)-1-i] != n[len(n)-1-period-i] {
			return false
		}
	}
	return true
}

// lastIndexTwoWay returns the last start offset of needle in haystack,
// or -1. Callers guarantee 0 < len(n) <= len(h).
func lastIndexTwoWay(h, n []byte) int {
	s := reverseMaximalSuffix(n)
	r := reverseMaximalSuffixRev(n)
	w := r
	if s.crit > r.crit {
		w = s
	}
	if w.crit+1+w.period <= len(n) && equalFromEnd(n, w.period, w.crit+1) {
		return lastIndexMemoized(h, n, w)
	}
	return lastIndexNormal(h, n, w)
}

func lastIndexMemoized(h, n []byte, f factorization) int {
	hsize, nsize := len(h), len(n)
	lpos := 0
	shift := -1
	for lpos <= hsize-nsize {
		rpos := max(f.crit, shift) + 1
		for rpos < nsize && n[nsize-rpos-1] == h[hsize-(rpos+lpos)-1] {
			rpos++
		}
		if rpos < nsize {
			lpos += rpos - f.crit
			shift = -1
			continue
		}
		rpos = f.crit
		for rpos > shift && n[nsize-rpos-1] == h[hsize-(rpos+lpos)-1] {
			rpos--
		}
		if rpos <= shift {
			return hsize - lpos - nsize
		}
		lpos += f.period
		shift = nsize - f.period - 1
	}
	return -1
}

func lastIndexNormal(h, n []byte, f factorization) int {
	hsize, nsize := len(h), len(n)
	period := max(f.crit+1, nsize-f.crit-1) + 1
	lpos := 0
	for lpos <= hsize-nsize {
		rpos := f.crit + 1
		for rpos < nsize && n[nsize-rpos-1] == h[hsize-(rpos+lpos)-1] {
			rpos++
		}
		if rpos < nsize {
			lpos += rpos - f.crit
			continue
		}
		rpos = f.crit
		for rpos >= 0 && n[nsize-rpos-1] == h[hsize-(rpos+lpos)-1] {
			rpos--
		}
		if rpos < 0 {
			return hsize - lpos - nsize
		}
		lpos += period
	}
	return -1
}
