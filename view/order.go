package view

import (
	"bytes"

	segascii "github.com/segmentio/asm/ascii"

	"github.com/mhr3/strview/internal/bytealg"
)

// Order is a three-valued comparison result. OrderError is surfaced
// only when an input reference is absent.
type Order int8

const (
	Lesser  Order = -1
	Equal   Order = 0
	Greater Order = 1
	// OrderError reports that a comparison received an absent reference.
	OrderError Order = 2
)

func (o Order) String() string {
	switch o {
	case Lesser:
		return "Lesser"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return "OrderError"
}

// Compare orders two views by unsigned octet values. Either operand
// being an absent reference yields OrderError; the null view compares
// Equal to any empty view and only to empty views.
func Compare(lhs, rhs View) Order {
	if lhs.absent() || rhs.absent() {
		return OrderError
	}
	return Order(bytes.Compare(lhs.s, rhs.s))
}

// CompareTerminated orders the view against a NUL-terminated buffer.
// The buffer ends at its first NUL, or at its slice end when none
// occurs.
func CompareTerminated(lhs View, rhs []byte) Order {
	if lhs.absent() || rhs == nil {
		return OrderError
	}
	if k := bytealg.IndexByte(rhs, 0); k >= 0 {
		rhs = rhs[:k]
	}
	return Order(bytes.Compare(lhs.s, rhs))
}

// CompareN orders the view against at most n bytes of rhs; rhs ends at
// its first NUL or at n, whichever comes first. Operands that exhaust
// at the same point compare Equal.
func CompareN(lhs View, rhs []byte, n int) Order {
	if lhs.absent() || rhs == nil {
		return OrderError
	}
	if n < 0 {
		n = 0
	}
	if n < len(rhs) {
		rhs = rhs[:n]
	}
	if k := bytealg.IndexByte(rhs, 0); k >= 0 {
		rhs = rhs[:k]
	}
	return Order(bytes.Compare(lhs.s, rhs))
}

// EqualFold reports whether two views are equal under ASCII case
// folding. Bytes outside the ASCII letters compare verbatim; there is
// no Unicode awareness.
func EqualFold(a, b View) bool {
	return segascii.EqualFold(a.s, b.s)
}

// StartsWithFold is StartsWith under ASCII case folding.
func (v View) StartsWithFold(prefix View) bool {
	if prefix.Len() > len(v.s) {
		return false
	}
	return segascii.EqualFold(v.s[:prefix.Len()], prefix.s)
}

// EndsWithFold is EndsWith under ASCII case folding.
func (v View) EndsWithFold(suffix View) bool {
	if suffix.Len() > len(v.s) {
		return false
	}
	return segascii.EqualFold(v.s[len(v.s)-suffix.Len():], suffix.s)
}
