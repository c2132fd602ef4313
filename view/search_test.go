package view

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestFind(t *testing.T) {
	tests := []struct {
		haystack string
		pos      int
		needle   string
		exp      int
	}{
		{"hello world", 0, "world", 6},
		{"hello world", 0, "xyz", 11},
		{"aaaa", 0, "", 0},
		{"aaaa", 2, "", 2},
		{"hello world", 7, "world", 11},
		{"hello world", 6, "world", 6},
		{"abcabc", 1, "abc", 3},
		{"abc", 0, "abcd", 3},
		{"", 0, "a", 0},
		{"abc", 100, "a", 3},
	}
	for _, tt := range tests {
		v := NewString(tt.haystack)
		if got := v.Find(tt.pos, NewString(tt.needle)); got != tt.exp {
			t.Errorf("Find(%q, %d, %q) = %d; want %d", tt.haystack, tt.pos, tt.needle, got, tt.exp)
		}
	}
}

func TestRFind(t *testing.T) {
	tests := []struct {
		haystack string
		pos      int
		needle   string
		exp      int
	}{
		{"abababab", 8, "ab", 6},
		{"abc", 3, "abcd", 3},
		{"hello world world", 17, "world", 12},
		{"hello world world", 11, "world", 6},
		{"abcabc", 2, "abc", 0},
		{"abcabc", 100, "abc", 3},
		{"abc", 1, "bc", 1}, // match may extend past pos
		{"abc", 0, "bc", 3},
		{"", 0, "a", 0},
		{"abc", 3, "", 3},
	}
	for _, tt := range tests {
		v := NewString(tt.haystack)
		if got := v.RFind(tt.pos, NewString(tt.needle)); got != tt.exp {
			t.Errorf("RFind(%q, %d, %q) = %d; want %d", tt.haystack, tt.pos, tt.needle, got, tt.exp)
		}
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		haystack, needle string
		exp              bool
	}{
		{"hello", "ell", true},
		{"hello", "xyz", false},
		{"hello", "", true},
		{"", "", false},
		{"", "a", false},
		{"ab", "abc", false},
	}
	for _, tt := range tests {
		if got := NewString(tt.haystack).Contains(NewString(tt.needle)); got != tt.exp {
			t.Errorf("Contains(%q, %q) = %v; want %v", tt.haystack, tt.needle, got, tt.exp)
		}
	}
}

func TestMatch(t *testing.T) {
	h := NewString("say hello twice hello")
	m := h.Match(NewString("hello"))
	if m.String() != "hello" {
		t.Fatalf("Match = %q; want hello", m.String())
	}
	if off, ok := offsetIn(h, m); !ok || off != 4 {
		t.Errorf("Match offset = %d, %v; want 4", off, ok)
	}
	r := h.RMatch(NewString("hello"))
	if off, ok := offsetIn(h, r); !ok || off != 16 {
		t.Errorf("RMatch offset = %d, %v; want 16", off, ok)
	}
	miss := h.Match(NewString("absent"))
	if miss.Len() != 0 {
		t.Errorf("Match miss len = %d; want 0", miss.Len())
	}
	if off, ok := offsetIn(h, miss); !ok || off != h.Len() {
		t.Errorf("Match miss offset = %d; want haystack end", off)
	}
	if got := h.Match(View{}); got.Len() != 0 {
		t.Errorf("Match(absent needle) len = %d; want 0", got.Len())
	}
}

func TestClassScans(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		set      string
		got, exp int
	}{
		{"first_of", "hello", "aeiou", NewString("hello").FindFirstOf(NewString("aeiou")), 1},
		{"first_of miss", "xyz", "aeiou", NewString("xyz").FindFirstOf(NewString("aeiou")), 3},
		{"last_not_of", "xxxabcxxx", "x", NewString("xxxabcxxx").FindLastNotOf(NewString("x")), 5},
		{"first_not_of", "xxxabc", "x", NewString("xxxabc").FindFirstNotOf(NewString("x")), 3},
		{"first_not_of all", "xxx", "x", NewString("xxx").FindFirstNotOf(NewString("x")), 3},
		{"last_of", "xxxabcxxx", "abc", NewString("xxxabcxxx").FindLastOf(NewString("abc")), 5},
		{"last_of miss", "zzz", "abc", NewString("zzz").FindLastOf(NewString("abc")), 3},
		{"last_of tail run", "abc", "c", NewString("abc").FindLastOf(NewString("c")), 2},
		{"empty haystack", "", "abc", NewString("").FindFirstOf(NewString("abc")), 0},
		{"empty set first_of", "abc", "", NewString("abc").FindFirstOf(NewString("")), 3},
		{"empty set first_not_of", "abc", "", NewString("abc").FindFirstNotOf(NewString("")), 0},
		{"empty set last_not_of", "abc", "", NewString("abc").FindLastNotOf(NewString("")), 2},
	}
	for _, tt := range tests {
		if tt.got != tt.exp {
			t.Errorf("%s (%q, %q) = %d; want %d", tt.name, tt.haystack, tt.set, tt.got, tt.exp)
		}
	}
}

// For a set and its complement over the bytes actually used, the first
// member of one is the first non-member of the other.
func TestClassScanDuality(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	for iter := 0; iter < 5000; iter++ {
		h := randomLower(rng, 1+rng.Intn(20))
		set := randomLower(rng, 1+rng.Intn(3))
		var comp []byte
		for c := byte('a'); c <= 'z'; c++ {
			if bytes.IndexByte(set, c) < 0 {
				comp = append(comp, c)
			}
		}
		v := New(h)
		if a, b := v.FindFirstOf(New(set)), v.FindFirstNotOf(New(comp)); a != b {
			t.Fatalf("duality (%q, %q): first_of %d != first_not_of-comp %d", h, set, a, b)
		}
		if a, b := v.FindLastOf(New(set)), v.FindLastNotOf(New(comp)); a != b {
			t.Fatalf("duality (%q, %q): last_of %d != last_not_of-comp %d", h, set, a, b)
		}
	}
}

// Find round-trip: a reported match really is one, and no earlier
// offset matches. RFind symmetrically from the right.
func TestFindRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 10000; iter++ {
		h := New(randomLower(rng, rng.Intn(40)))
		n := New(randomLower(rng, 1+rng.Intn(6)))
		k := h.Find(0, n)
		if k < h.Len() {
			if Compare(h.Substr(k, n.Len()), n) != Equal {
				t.Fatalf("Find(%q, %q) = %d; not a match", h.String(), n.String(), k)
			}
			for j := 0; j < k; j++ {
				if j+n.Len() <= h.Len() && Compare(h.Substr(j, n.Len()), n) == Equal {
					t.Fatalf("Find(%q, %q) = %d; earlier match at %d", h.String(), n.String(), k, j)
				}
			}
		} else if bytes.Contains(h.Raw(), n.Raw()) {
			t.Fatalf("Find(%q, %q) missed a match", h.String(), n.String())
		}
		k = h.RFind(h.Len(), n)
		if k < h.Len() {
			if Compare(h.Substr(k, n.Len()), n) != Equal {
				t.Fatalf("RFind(%q, %q) = %d; not a match", h.String(), n.String(), k)
			}
			for j := k + 1; j+n.Len() <= h.Len(); j++ {
				if Compare(h.Substr(j, n.Len()), n) == Equal {
					t.Fatalf("RFind(%q, %q) = %d; later match at %d", h.String(), n.String(), k, j)
				}
			}
		} else if bytes.Contains(h.Raw(), n.Raw()) {
			t.Fatalf("RFind(%q, %q) missed a match", h.String(), n.String())
		}
	}
}

// The pathological shape from the Two-Way literature stays correct (and
// fast) through the public API.
func TestFindPathological(t *testing.T) {
	h := NewString("aaaaaaaaaaaaab")
	if got := h.Find(0, NewString("aaaaab")); got != 8 {
		t.Errorf("Find pathological = %d; want 8", got)
	}
	big := New(append(bytes.Repeat([]byte("a"), 1<<17), 'b'))
	needle := New(append(bytes.Repeat([]byte("a"), 1<<9), 'b'))
	if got, exp := big.Find(0, needle), 1<<17-1<<9; got != exp {
		t.Errorf("Find big pathological = %d; want %d", got, exp)
	}
}
