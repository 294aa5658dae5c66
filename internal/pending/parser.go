// Package pending turns loosely typed node transaction objects into
// PendingTransaction values. Parsing never fails: absent or malformed fields
// take a documented fallback and are listed in PendingTransaction.Defaulted.
package pending

import (
	"strconv"

	"txmerge/internal/hexnum"
)

const (
	absentQuantity = "0"
	zeroDecimal    = "0"
)

type Parser struct {
	normalizer hexnum.Normalizer
}

func NewParser(normalizer hexnum.Normalizer) Parser {
	return Parser{normalizer: normalizer}
}

func (p Parser) ParseMap(raw map[string]any) PendingTransaction {
	return p.Parse(DecodeFields(raw))
}

func (p Parser) Parse(f Fields) PendingTransaction {
	var defaulted []string
	quantity := func(key string, v *string) string {
		if v == nil {
			defaulted = append(defaulted, key)
			return p.normalizer.NormalizeOr(absentQuantity, zeroDecimal).Value
		}
		res := p.normalizer.NormalizeOr(*v, zeroDecimal)
		if res.Defaulted() {
			defaulted = append(defaulted, key)
		}
		return res.Value
	}

	tx := PendingTransaction{
		BlockHash:      orEmpty(f.BlockHash),
		BlockNumber:    quantity(KeyBlockNumber, f.BlockNumber),
		From:           orEmpty(f.From),
		To:             orEmpty(f.To),
		Gas:            quantity(KeyGas, f.Gas),
		GasPrice:       quantity(KeyGasPrice, f.GasPrice),
		Hash:           orEmpty(f.Hash),
		Value:          quantity(KeyValue, f.Value),
		ShardingFlag:   quantity(KeyShardingFlag, f.ShardingFlag),
		SystemContract: quantity(KeySystemContract, f.SystemContract),
		Via:            orEmpty(f.Via),
	}

	nonce, ok := p.nonce(f.Nonce)
	if !ok {
		defaulted = append(defaulted, KeyNonce)
	}
	tx.Nonce = nonce
	tx.Defaulted = defaulted

	return tx
}

func (p Parser) nonce(v *string) (int64, bool) {
	if v == nil {
		return NonceUnknown, false
	}

	dec := p.normalizer.Normalize(*v)
	if dec == "" {
		return NonceUnknown, false
	}

	n, err := strconv.ParseInt(dec, 10, 64)
	if err != nil {
		return NonceUnknown, false
	}
	return n, true
}

func orEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

var std = NewParser(hexnum.NewNormalizer(nil))

// ParseMap parses raw with the unbounded numeric backend.
func ParseMap(raw map[string]any) PendingTransaction {
	return std.ParseMap(raw)
}
