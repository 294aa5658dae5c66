// Package address validates account addresses: 20 bytes of hex with an optional
// 0x prefix, EIP-55 checksummed when the digits mix letter case.
package address

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidAddress error = errors.New("invalid address")

// IsValid reports whether candidate is a well-formed address. All-lower and
// all-upper digits carry no checksum and are accepted as-is.
func IsValid(candidate string) bool {
	if !common.IsHexAddress(candidate) {
		return false
	}

	digits := candidate
	if len(digits) == 2*common.AddressLength+2 {
		digits = digits[2:]
	}
	if !mixedCase(digits) {
		return true
	}

	return common.HexToAddress(digits).Hex()[2:] == digits
}

// Parse returns the address encoded by candidate.
func Parse(candidate string) (common.Address, error) {
	if !IsValid(candidate) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, candidate)
	}
	return common.HexToAddress(candidate), nil
}

// Display renders addr in checksummed form.
func Display(addr common.Address) string {
	return addr.Hex()
}

func mixedCase(digits string) bool {
	var lower, upper bool
	for i := 0; i < len(digits); i++ {
		switch c := digits[i]; {
		case c >= 'a' && c <= 'f':
			lower = true
		case c >= 'A' && c <= 'F':
			upper = true
		}
	}
	return lower && upper
}
