// Package view provides non-owning, bounds-checked views over byte
// strings: comparison, slicing, prefix/suffix checks, character-class
// scans, substring search in both directions, and a non-destructive
// tokenizer.
//
// A View borrows externally owned bytes and never copies or mutates
// them; the caller must keep the backing bytes alive and unmodified for
// as long as any View derived from them is in use. Every operation is a
// pure function of its arguments, so concurrent reads through any
// number of Views are safe. Out-of-range indices saturate rather than
// fault, absent references yield the null view, and no operation
// allocates on a search path.
package view

import (
	"unsafe"

	"github.com/mhr3/strview/internal/bytealg"
)

// nilBuf backs the null view: a static, dereferenceable single NUL.
var nilBuf = [1]byte{0}

// View is a non-owning (reference, length) pair over immutable octets.
// The zero View is an absent reference; constructors turn absent inputs
// into the null view instead, so accessors stay total.
type View struct {
	s []byte
}

// Nil returns the null view: a zero-length view over a static NUL byte.
func Nil() View {
	return View{s: nilBuf[:0]}
}

func (v View) absent() bool {
	return v.s == nil
}

// New returns a view over exactly b. A nil slice yields the null view.
func New(b []byte) View {
	if b == nil {
		return Nil()
	}
	return View{s: b}
}

// NewString returns a zero-copy view over the bytes of s.
func NewString(s string) View {
	if len(s) == 0 {
		return Nil()
	}
	return View{s: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// FromTerminated returns a view whose length is the distance to the
// first NUL in b, or all of b when none occurs.
func FromTerminated(b []byte) View {
	if b == nil {
		return Nil()
	}
	if k := bytealg.IndexByte(b, 0); k >= 0 {
		return View{s: b[:k]}
	}
	return View{s: b}
}

// FromBounded returns a view over at most n bytes of b, stopping early
// at the first NUL.
func FromBounded(b []byte, n int) View {
	if b == nil {
		return Nil()
	}
	if n < 0 {
		n = 0
	}
	if n > len(b) {
		n = len(b)
	}
	return FromTerminated(b[:n])
}

// FromDelimiter returns the first token of b separated by delim. A nil
// delimiter yields a view over all of b.
func FromDelimiter(b, delim []byte) View {
	if b == nil {
		return Nil()
	}
	if delim == nil {
		return View{s: b}
	}
	return TokenBegin(New(b), New(delim))
}

// Extend scans forward from the view's start through its backing
// storage until a NUL and returns a view with the discovered length.
// Used when the caller knows the bytes are terminated but the length is
// unknown; the scan is bounded by the backing slice's capacity.
func Extend(v View) View {
	if v.absent() {
		return Nil()
	}
	full := v.s[:cap(v.s)]
	if k := bytealg.IndexByte(full, 0); k >= 0 {
		return View{s: full[:k]}
	}
	return View{s: full}
}

// Len returns the number of addressable octets in the view. It never
// includes a terminator.
func (v View) Len() int {
	return len(v.s)
}

// IsEmpty reports whether the view has length zero.
func (v View) IsEmpty() bool {
	return len(v.s) == 0
}

// Bytes reports the terminated byte count of the view, Len()+1. It is a
// reporting value only; the viewed region itself carries no terminator.
func (v View) Bytes() int {
	return len(v.s) + 1
}

// At returns the i-th octet, or the NUL octet when i is out of range.
func (v View) At(i int) byte {
	if i < 0 || i >= len(v.s) {
		return 0
	}
	return v.s[i]
}

// Front returns the first octet, or NUL for an empty view.
func (v View) Front() byte {
	if len(v.s) == 0 {
		return 0
	}
	return v.s[0]
}

// Back returns the last octet, or NUL for an empty view.
func (v View) Back() byte {
	if len(v.s) == 0 {
		return 0
	}
	return v.s[len(v.s)-1]
}

// Raw returns the backing slice; nil for an absent reference. The bytes
// remain owned by whoever created them.
func (v View) Raw() []byte {
	return v.s
}

// String materializes the viewed bytes as a string. This is the one
// operation in the package that copies.
func (v View) String() string {
	return string(v.s)
}

// Substr returns the view of count octets starting at pos. pos
// saturates to the end of the view and count to the octets remaining.
func (v View) Substr(pos, count int) View {
	if pos < 0 {
		pos = 0
	}
	if pos > len(v.s) {
		return View{s: v.s[len(v.s):]}
	}
	if count < 0 {
		count = 0
	}
	if count > len(v.s)-pos {
		count = len(v.s) - pos
	}
	return View{s: v.s[pos : pos+count]}
}

// RemovePrefix returns the view with its first n octets dropped; n is
// clamped to the view's length.
func (v View) RemovePrefix(n int) View {
	if v.absent() {
		return Nil()
	}
	if n < 0 {
		n = 0
	}
	if n > len(v.s) {
		n = len(v.s)
	}
	return View{s: v.s[n:]}
}

// RemoveSuffix returns the view with its last n octets dropped; n is
// clamped to the view's length.
func (v View) RemoveSuffix(n int) View {
	if v.absent() {
		return Nil()
	}
	if n < 0 {
		n = 0
	}
	if n > len(v.s) {
		n = len(v.s)
	}
	return View{s: v.s[:len(v.s)-n]}
}

// Fill copies src into dst and zero-terminates it: min(len(dst),
// src.Len()+1) bytes are written, the last of them always NUL. Returns
// the number of bytes written. A one-byte dst receives only the
// terminator.
func Fill(dst []byte, src View) int {
	if len(dst) == 0 || src.absent() {
		return 0
	}
	n := len(dst)
	if n > src.Len()+1 {
		n = src.Len() + 1
	}
	copy(dst, src.s[:n-1])
	dst[n-1] = 0
	return n
}

// FillPreserved reports how many of src's octets survive a Fill into a
// destination of dstLen bytes: one fewer than the bytes written, since
// the final byte is always the terminator.
func FillPreserved(dstLen int, src View) int {
	if dstLen <= 0 || src.absent() || src.IsEmpty() {
		return 0
	}
	n := dstLen
	if n > src.Len()+1 {
		n = src.Len() + 1
	}
	return n - 1
}
