package bytealg

import (
	"bytes"
	"testing"
)

func FuzzIndex(f *testing.F) {
	f.Add([]byte("hello world"), []byte("world"))
	f.Add([]byte("aaaaaaaaaaaaab"), []byte("aaaaab"))
	f.Add([]byte("abababab"), []byte("ab"))
	f.Add([]byte(""), []byte("a"))
	f.Add([]byte("mississippi"), []byte("issip"))
	f.Add([]byte("\x00\x01\x02\x03\x04"), []byte("\x02\x03"))
	f.Fuzz(func(t *testing.T, h, n []byte) {
		if len(n) == 0 {
			return
		}
		if got, exp := Index(h, n), bytes.Index(h, n); got != exp {
			t.Fatalf("Index(%q, %q) = %d; want %d", h, n, got, exp)
		}
	})
}

func FuzzLastIndex(f *testing.F) {
	f.Add([]byte("hello world world"), []byte("world"))
	f.Add([]byte("abababab"), []byte("ab"))
	f.Add([]byte("aaaaaaaaaaaaab"), []byte("aaaaab"))
	f.Add([]byte("x"), []byte("xx"))
	f.Add([]byte("\xff\xfe\xff\xfe"), []byte("\xff\xfe"))
	f.Fuzz(func(t *testing.T, h, n []byte) {
		if len(n) == 0 {
			return
		}
		if got, exp := LastIndex(h, n), bytes.LastIndex(h, n); got != exp {
			t.Fatalf("LastIndex(%q, %q) = %d; want %d", h, n, got, exp)
		}
	})
}

func FuzzSpan(f *testing.F) {
	f.Add([]byte("aabbaacc"), []byte("ab"))
	f.Add([]byte("hello"), []byte("aeiou"))
	f.Add([]byte(""), []byte(""))
	f.Fuzz(func(t *testing.T, s, set []byte) {
		k := Span(s, set)
		c := CSpan(s, set)
		if k < 0 || k > len(s) || c < 0 || c > len(s) {
			t.Fatalf("Span/CSpan(%q, %q) = %d/%d out of range", s, set, k, c)
		}
		if len(set) > 0 && k > 0 && c > 0 {
			t.Fatalf("Span and CSpan both nonzero for %q, %q", s, set)
		}
	})
}
