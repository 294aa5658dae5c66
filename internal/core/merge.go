package core

import (
	"errors"
	"strconv"
	"time"

	"txmerge/internal/address"
	"txmerge/internal/pending"
)

var ErrInvalidSender error = errors.New("invalid sender address")

var TimeNow = time.Now

// Merge builds the pending version of prior from a freshly parsed node
// transaction. The sender must be a valid address; every other field is taken
// as parsed, with the recipient kept raw when it does not validate.
func Merge(prior Transaction, tx pending.PendingTransaction, coin Coin) (Transaction, error) {
	from, err := address.Parse(tx.From)
	if err != nil {
		return Transaction{}, errors.Join(ErrInvalidSender, err)
	}

	to := tx.To
	if addr, err := address.Parse(tx.To); err == nil {
		to = address.Display(addr)
	}

	blockNumber, err := strconv.ParseInt(tx.BlockNumber, 10, 64)
	if err != nil {
		blockNumber = 0
	}

	return Transaction{
		ID:             tx.Hash,
		BlockNumber:    blockNumber,
		From:           address.Display(from),
		To:             to,
		Value:          tx.Value,
		Gas:            tx.Gas,
		GasPrice:       tx.GasPrice,
		GasUsed:        "",
		Nonce:          tx.Nonce,
		ShardingFlag:   tx.ShardingFlag,
		SystemContract: tx.SystemContract,
		Via:            tx.Via,
		Date:           TimeNow(),
		Coin:           coin,
		Operations:     copyOperations(prior.Operations),
		State:          StatePending,
	}, nil
}

func copyOperations(ops []Operation) []Operation {
	if ops == nil {
		return nil
	}
	out := make([]Operation, len(ops))
	copy(out, ops)
	return out
}
