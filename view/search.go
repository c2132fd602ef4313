package view

import (
	"bytes"

	"github.com/mhr3/strview/internal/bytealg"
)

// "Not found" is uniformly signaled by returning the view's length as
// an offset; v.Len() plays the role of npos.

// StartsWith reports whether the view begins with prefix. A prefix
// longer than the view is never a match.
func (v View) StartsWith(prefix View) bool {
	return bytes.HasPrefix(v.s, prefix.s)
}

// EndsWith reports whether the view ends with suffix.
func (v View) EndsWith(suffix View) bool {
	return bytes.HasSuffix(v.s, suffix.s)
}

// Contains reports whether needle occurs in the view. An empty needle
// is contained in any non-empty view; an empty view contains nothing.
func (v View) Contains(needle View) bool {
	if needle.Len() > len(v.s) || len(v.s) == 0 {
		return false
	}
	if needle.Len() == 0 {
		return true
	}
	return bytealg.Index(v.s, needle.s) >= 0
}

// Find returns the offset of the first occurrence of needle starting
// at or after pos, or v.Len() when there is none. An empty needle
// matches immediately at pos.
func (v View) Find(pos int, needle View) int {
	if pos < 0 {
		pos = 0
	}
	if pos > len(v.s) || needle.Len() > len(v.s)-pos {
		return len(v.s)
	}
	if needle.Len() == 0 {
		return pos
	}
	if k := bytealg.Index(v.s[pos:], needle.s); k >= 0 {
		return pos + k
	}
	return len(v.s)
}

// RFind returns the offset of the last occurrence of needle whose
// start is at or before pos, or v.Len() when there is none. The match
// itself may extend past pos.
func (v View) RFind(pos int, needle View) int {
	if len(v.s) == 0 || needle.Len() == 0 || needle.Len() > len(v.s) {
		return len(v.s)
	}
	if pos < 0 {
		return len(v.s)
	}
	limit := pos + needle.Len()
	if limit > len(v.s) || limit < 0 {
		limit = len(v.s)
	}
	if k := bytealg.LastIndex(v.s[:limit], needle.s); k >= 0 {
		return k
	}
	return len(v.s)
}

// Match returns a view over the first occurrence of needle, or a
// zero-length view at the end of the haystack when there is none.
func (v View) Match(needle View) View {
	if v.absent() || needle.absent() {
		return Nil()
	}
	end := View{s: v.s[len(v.s):]}
	if needle.Len() > len(v.s) || len(v.s) == 0 || needle.Len() == 0 {
		return end
	}
	k := bytealg.Index(v.s, needle.s)
	if k < 0 {
		return end
	}
	return View{s: v.s[k : k+needle.Len()]}
}

// RMatch returns a view over the last occurrence of needle, or a
// zero-length view at the end of the haystack when there is none.
func (v View) RMatch(needle View) View {
	if v.absent() {
		return Nil()
	}
	end := View{s: v.s[len(v.s):]}
	if needle.Len() > len(v.s) || len(v.s) == 0 || needle.Len() == 0 {
		return end
	}
	k := bytealg.LastIndex(v.s, needle.s)
	if k < 0 {
		return end
	}
	return View{s: v.s[k : k+needle.Len()]}
}

// FindFirstOf returns the offset of the first octet that is a member of
// set, or v.Len() when no octet is.
func (v View) FindFirstOf(set View) int {
	if len(v.s) == 0 {
		return 0
	}
	if set.Len() == 0 {
		return len(v.s)
	}
	return bytealg.CSpan(v.s, set.s)
}

// FindFirstNotOf returns the offset of the first octet that is not a
// member of set, or v.Len() when every octet is.
func (v View) FindFirstNotOf(set View) int {
	if len(v.s) == 0 || set.Len() == 0 {
		return 0
	}
	return bytealg.Span(v.s, set.s)
}

// FindLastOf returns the offset of the last octet that is a member of
// set, or v.Len() when no octet is.
func (v View) FindLastOf(set View) int {
	if len(v.s) == 0 {
		return 0
	}
	if set.Len() == 0 {
		return len(v.s)
	}
	if k := bytealg.LastIndexAny(v.s, set.s); k >= 0 {
		return k
	}
	return len(v.s)
}

// FindLastNotOf returns the offset of the last octet that is not a
// member of set, or v.Len() when every octet is. With an empty set the
// final octet qualifies.
func (v View) FindLastNotOf(set View) int {
	if len(v.s) == 0 {
		return 0
	}
	if k := bytealg.LastIndexNotAny(v.s, set.s); k >= 0 {
		return k
	}
	return len(v.s)
}
