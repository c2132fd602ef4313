package view

import (
	"bytes"
	"unsafe"

	"github.com/mhr3/strview/internal/bytealg"
)

// Non-destructive tokenizer. The delimiter is a literal substring, not
// a set. Runs of back-to-back delimiter copies collapse into a single
// separation; when a run carries a leftover partial copy, the partial
// stays with the token already passed if the run ends on a full copy,
// and with the next token otherwise (see tokenSpan). Tokens are views into the source, so the iteration state
// lives entirely in the token itself:
//
//	for tok := view.TokenBegin(src, delim); !view.TokenEnd(src, tok); tok = view.TokenNext(src, tok, delim) {
//		...
//	}

// offsetIn locates sub inside src by pointer arithmetic on the slice
// data. Views not derived from src fail the range check.
func offsetIn(src, sub View) (int, bool) {
	if src.absent() || sub.s == nil {
		return 0, false
	}
	d := uintptr(unsafe.Pointer(unsafe.SliceData(sub.s))) - uintptr(unsafe.Pointer(unsafe.SliceData(src.s)))
	if d > uintptr(len(src.s)) {
		return 0, false
	}
	return int(d), true
}

// afterFind returns how many leading octets of h are consumed by
// back-to-back complete copies of delim. The two cursors advance in
// lockstep with the delimiter cursor cycling; a trailing partial copy
// rolls back, so it is never consumed. O(run length), no search.
func afterFind(h, delim View) int {
	if delim.Len() == 0 || delim.Len() > h.Len() {
		return 0
	}
	di, i := 0, 0
	for i < h.Len() && h.s[i] == delim.s[di] {
		di = (di + 1) % delim.Len()
		i++
	}
	return i - di
}

// beforeFind is the mirror of afterFind: how many trailing octets of h
// are complete delimiter copies.
func beforeFind(h, delim View) int {
	if delim.Len() == 0 || delim.Len() > h.Len() {
		return 0
	}
	di, i := 0, 0
	for i < h.Len() && h.s[h.Len()-i-1] == delim.s[delim.Len()-di-1] {
		di = (di + 1) % delim.Len()
		i++
	}
	return i - di
}

// tokenSpan returns the length of the token starting at the head of h:
// the distance to the next delimiter occurrence, or all of h when none
// occurs. A delimiter occurrence that sits inside a repetition run is
// aligned with the run's end when the run finishes on a full copy, so
// the leftover prefix octets stay with this token; a run that finishes
// mid-copy leaves its partial tail to the following token instead.
func tokenSpan(h, delim View) int {
	k := bytealg.Index(h.s, delim.s)
	if k < 0 {
		return h.Len()
	}
	run, di := 0, 0
	for k+run < h.Len() && h.s[k+run] == delim.s[di] {
		di = (di + 1) % delim.Len()
		run++
	}
	if part := run % delim.Len(); part != 0 && bytes.HasSuffix(h.s[k:k+run], delim.s) {
		return k + part
	}
	return k
}

// rtokenSpan is the mirror of tokenSpan: the length of the token ending
// at the tail of h, with runs aligned toward the start of the buffer.
func rtokenSpan(h, delim View) int {
	k := bytealg.LastIndex(h.s, delim.s)
	if k < 0 {
		return h.Len()
	}
	end := k + delim.Len()
	run, di := 0, 0
	for end-run > 0 && h.s[end-run-1] == delim.s[delim.Len()-1-di] {
		di = (di + 1) % delim.Len()
		run++
	}
	if part := run % delim.Len(); part != 0 && bytes.HasPrefix(h.s[end-run:end], delim.s) {
		return h.Len() - end + part
	}
	return h.Len() - end
}

// TokenBegin returns the first token of src: the span between the
// leading delimiter run and the next delimiter occurrence. When src
// holds nothing but delimiters the result is a zero-length view at the
// end of src.
func TokenBegin(src, delim View) View {
	if src.absent() {
		return Nil()
	}
	if delim.absent() || delim.IsEmpty() {
		return View{s: src.s[len(src.s):]}
	}
	rest := View{s: src.s[afterFind(src, delim):]}
	if rest.IsEmpty() {
		return rest
	}
	return View{s: rest.s[:tokenSpan(rest, delim)]}
}

// TokenNext returns the token following token within src, or a
// zero-length view at the end of src when the input is exhausted.
func TokenNext(src, token, delim View) View {
	if token.s == nil {
		return Nil()
	}
	if src.absent() {
		return Nil()
	}
	end := View{s: src.s[len(src.s):]}
	if delim.absent() || delim.IsEmpty() || token.Len() == 0 {
		return end
	}
	off, ok := offsetIn(src, token)
	if !ok {
		return end
	}
	cur := off + token.Len()
	if cur >= len(src.s) {
		return end
	}
	rest := View{s: src.s[cur:]}
	rest = View{s: rest.s[afterFind(rest, delim):]}
	if rest.IsEmpty() {
		return end
	}
	return View{s: rest.s[:tokenSpan(rest, delim)]}
}

// TokenEnd reports whether iteration is finished: the token is empty or
// it no longer lies inside src.
func TokenEnd(src, token View) bool {
	if token.Len() == 0 {
		return true
	}
	off, ok := offsetIn(src, token)
	return !ok || off >= src.Len()
}

// TokenReverseBegin returns the last token of src: the span between the
// final delimiter occurrence and the trailing delimiter run.
func TokenReverseBegin(src, delim View) View {
	if src.absent() {
		return Nil()
	}
	if delim.absent() || delim.IsEmpty() {
		return View{s: src.s[:0]}
	}
	rest := View{s: src.s[:src.Len()-beforeFind(src, delim)]}
	if rest.IsEmpty() {
		return rest
	}
	return View{s: rest.s[rest.Len()-rtokenSpan(rest, delim):]}
}

// TokenReverseNext returns the token preceding token within src, or a
// zero-length view at the start of src when the input is exhausted.
func TokenReverseNext(src, token, delim View) View {
	if token.s == nil {
		return Nil()
	}
	if src.absent() {
		return Nil()
	}
	start := View{s: src.s[:0]}
	if delim.absent() || delim.IsEmpty() || token.Len() == 0 {
		return start
	}
	off, ok := offsetIn(src, token)
	if !ok || off == 0 {
		return start
	}
	rest := View{s: src.s[:off]}
	rest = View{s: rest.s[:rest.Len()-beforeFind(rest, delim)]}
	if rest.IsEmpty() {
		return start
	}
	return View{s: rest.s[rest.Len()-rtokenSpan(rest, delim):]}
}

// TokenReverseEnd reports whether reverse iteration is finished: the
// token is empty and sits at the start of src.
func TokenReverseEnd(src, token View) bool {
	if token.Len() != 0 {
		return false
	}
	off, ok := offsetIn(src, token)
	return !ok || off == 0
}
