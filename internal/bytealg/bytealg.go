// Package bytealg implements portable substring search over byte slices.
//
// Needles of length 1-4 go through fixed-width scanners that slide a
// packed integer window one byte at a time; anything longer goes through
// the Two-Way matcher. All functions follow the strings.Index
// convention: the first (or last) start offset on a match, -1 otherwise.
// No function reads outside its arguments, and nothing here allocates.
package bytealg

// Index returns the first start offset of needle in haystack, or -1.
// An empty needle never matches; callers decide what an empty pattern
// means at their own boundary.
func Index(haystack, needle []byte) int {
	switch n := len(needle); {
	case n == 0 || n > len(haystack):
		return -1
	case n == 1:
		return IndexByte(haystack, needle[0])
	case n == 2:
		return index2(haystack, needle)
	case n == 3:
		return index3(haystack, needle)
	case n == 4:
		return index4(haystack, needle)
	}
	return indexTwoWay(haystack, needle)
}

// LastIndex returns the last start offset of needle in haystack, or -1.
func LastIndex(haystack, needle []byte) int {
	switch n := len(needle); {
	case n == 0 || n > len(haystack):
		return -1
	case n == 1:
		return LastIndexByte(haystack, needle[0])
	case n == 2:
		return lastIndex2(haystack, needle)
	case n == 3:
		return lastIndex3(haystack, needle)
	case n == 4:
		return lastIndex4(haystack, needle)
	}
	return lastIndexTwoWay(haystack, needle)
}

// IndexByte returns the first offset of c in s, or -1.
func IndexByte(s []byte, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// LastIndexByte returns the last offset of c in s, or -1.
func LastIndexByte(s []byte, c byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// index2 slides a 16-bit window over the haystack. The needle is packed
// big-endian so the leading byte sits in the high-order position.
func index2(h, n []byte) int {
	nw := uint16(n[0])<<8 | uint16(n[1])
	hw := uint16(h[0])<<8 | uint16(h[1])
	if hw == nw {
		return 0
	}
	for i := 2; i < len(h); i++ {
		hw = hw<<8 | uint16(h[i])
		if hw == nw {
			return i - 1
		}
	}
	return -1
}

// index3 uses a 32-bit window whose low byte stays zero; shifting after
// the or masks the stale byte off.
func index3(h, n []byte) int {
	nw := uint32(n[0])<<24 | uint32(n[1])<<16 | uint32(n[2])<<8
	hw := uint32(h[0])<<24 | uint32(h[1])<<16 | uint32(h[2])<<8
	if hw == nw {
		return 0
	}
	for i := 3; i < len(h); i++ {
		hw = (hw | uint32(h[i])) << 8
		if hw == nw {
			return i - 2
		}
	}
	return -1
}

func index4(h, n []byte) int {
	nw := uint32(n[0])<<24 | uint32(n[1])<<16 | uint32(n[2])<<8 | uint32(n[3])
	hw := uint32(h[0])<<24 | uint32(h[1])<<16 | uint32(h[2])<<8 | uint32(h[3])
	if hw == nw {
		return 0
	}
	for i := 4; i < len(h); i++ {
		hw = hw<<8 | uint32(h[i])
		if hw == nw {
			return i - 3
		}
	}
	return -1
}

// The reverse scanners slide the window right to left: the leading byte
// of each candidate window enters at the high-order position, so no
// masking is needed.

func lastIndex2(h, n []byte) int {
	nw := uint16(n[0])<<8 | uint16(n[1])
	i := len(h) - 2
	hw := uint16(h[i])<<8 | uint16(h[i+1])
	for hw != nw {
		i--
		if i < 0 {
			return -1
		}
		hw = hw>>8 | uint16(h[i])<<8
	}
	return i
}

func lastIndex3(h, n []byte) int {
	nw := uint32(n[0])<<16 | uint32(n[1])<<8 | uint32(n[2])
	i := len(h) - 3
	hw := uint32(h[i])<<16 | uint32(h[i+1])<<8 | uint32(h[i+2])
	for hw != nw {
		i--
		if i < 0 {
			return -1
		}
		hw = hw>>8 | uint32(h[i])<<16
	}
	return i
}

func lastIndex4(h, n []byte) int {
	nw := uint32(n[0])<<24 | uint32(n[1])<<16 | uint32(n[2])<<8 | uint32(n[3])
	i := len(h) - 4
	hw := uint32(h[i])<<24 | uint32(h[i+1])<<16 | uint32(h[i+2])<<8 | uint32(h[i+3])
	for hw != nw {
		i--
		if i < 0 {
			return -1
		}
		hw = hw>>8 | uint32(h[i])<<24
	}
	return i
}
