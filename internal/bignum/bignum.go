// Package bignum hides the arbitrary-precision integer library behind the two
// operations the normalizer needs: parsing base-16 digits and printing base 10.
package bignum

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrEmptyDigits  error = errors.New("empty digit string")
	ErrSigned       error = errors.New("signed value")
	ErrInvalidDigit error = errors.New("invalid hex digit")
	ErrOverflow     error = errors.New("value overflows backend width")
)

const (
	BackendBig     = "big"
	BackendUint256 = "uint256"
)

// Int is an unsigned integer produced by a Codec.
type Int interface {
	DecimalString() string
}

// Codec parses bare hex digits (no 0x prefix) into an Int.
type Codec interface {
	ParseHex(digits string) (Int, error)
}

// NewCodec returns the codec registered under name. An empty name selects the
// unbounded math/big backend.
func NewCodec(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendBig:
		return Big{}, nil
	case BackendUint256:
		return Uint256{}, nil
	default:
		return nil, fmt.Errorf("unknown numeric backend %q", name)
	}
}

// Big is the unbounded backend.
type Big struct{}

type bigInt struct {
	v *big.Int
}

func (b bigInt) DecimalString() string {
	return b.v.String()
}

func (Big) ParseHex(digits string) (Int, error) {
	if err := checkDigits(digits); err != nil {
		return nil, err
	}

	v, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("parse %q: %w", digits, ErrInvalidDigit)
	}

	return bigInt{v: v}, nil
}

// checkDigits rejects what math/big would otherwise accept but an unsigned
// quantity must not carry.
func checkDigits(digits string) error {
	if digits == "" {
		return ErrEmptyDigits
	}
	if digits[0] == '+' || digits[0] == '-' {
		return fmt.Errorf("parse %q: %w", digits, ErrSigned)
	}
	return nil
}
