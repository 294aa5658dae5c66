// Package hexnum converts hex-encoded chain quantities into canonical base-10
// strings.
package hexnum

import "txmerge/internal/bignum"

type Status int

const (
	StatusOK Status = iota
	StatusDefaulted
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDefaulted:
		return "defaulted"
	default:
		return "unknown"
	}
}

// Result is a normalized value together with whether it came from the input or
// from a fallback.
type Result struct {
	Value  string
	Status Status
}

func (r Result) Defaulted() bool {
	return r.Status == StatusDefaulted
}

// Normalizer is safe for concurrent use as long as its codec is.
type Normalizer struct {
	codec bignum.Codec
}

func NewNormalizer(codec bignum.Codec) Normalizer {
	if codec == nil {
		codec = bignum.Big{}
	}
	return Normalizer{codec: codec}
}

// Normalize strips an optional 0x/0X prefix and returns the decimal form of the
// remaining hex digits, or "" when they do not form an unsigned integer.
func (n Normalizer) Normalize(s string) string {
	codec := n.codec
	if codec == nil {
		codec = bignum.Big{}
	}

	v, err := codec.ParseHex(Drop0x(s))
	if err != nil {
		return ""
	}
	return v.DecimalString()
}

// NormalizeOr is Normalize with an explicit fallback for the failure case.
func (n Normalizer) NormalizeOr(s, fallback string) Result {
	if v := n.Normalize(s); v != "" {
		return Result{Value: v, Status: StatusOK}
	}
	return Result{Value: fallback, Status: StatusDefaulted}
}

// Drop0x removes a single leading 0x or 0X.
func Drop0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

var std = NewNormalizer(bignum.Big{})

// Normalize uses the unbounded math/big backend.
func Normalize(s string) string {
	return std.Normalize(s)
}
