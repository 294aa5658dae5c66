package bignum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// Uint256 is bounded to 256 bits, the width of every EVM quantity. Wider values
// fail to parse.
type Uint256 struct{}

type u256 struct {
	v *uint256.Int
}

func (u u256) DecimalString() string {
	return u.v.Dec()
}

func (Uint256) ParseHex(digits string) (Int, error) {
	if err := checkDigits(digits); err != nil {
		return nil, err
	}

	// uint256 insists on a 0x prefix and no leading zeros.
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		trimmed = "0"
	}

	v, err := uint256.FromHex("0x" + trimmed)
	if err != nil {
		if errors.Is(err, uint256.ErrBig256Range) {
			return nil, fmt.Errorf("parse %q: %w", digits, ErrOverflow)
		}
		return nil, fmt.Errorf("parse %q: %w: %w", digits, ErrInvalidDigit, err)
	}

	return u256{v: v}, nil
}
