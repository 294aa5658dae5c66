package core

import (
	"fmt"
	"time"
)

type State string

const (
	StateCompleted State = "completed"
	StatePending   State = "pending"
	StateError     State = "error"
	StateFailed    State = "failed"
	StateUnknown   State = "unknown"
	StateDeleted   State = "deleted"
)

func ParseState(s string) (State, error) {
	switch st := State(s); st {
	case StateCompleted, StatePending, StateError, StateFailed, StateUnknown, StateDeleted:
		return st, nil
	default:
		return "", fmt.Errorf("unknown transaction state %q", s)
	}
}

func (s State) String() string {
	return string(s)
}

func (s *State) UnmarshalText(text []byte) error {
	st, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// Coin identifies the network a transaction belongs to. The core never
// inspects it.
type Coin struct {
	Index  int    `json:"index"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Operation is a decoded sub-operation of a transaction, such as a token
// transfer.
type Operation struct {
	From            string `json:"from"`
	To              string `json:"to"`
	ContractAddress string `json:"contract,omitempty"`
	Type            string `json:"type"`
	Value           string `json:"value"`
	Symbol          string `json:"symbol,omitempty"`
	Name            string `json:"name,omitempty"`
	Decimals        int    `json:"decimals"`
}

type Transaction struct {
	ID             string      `json:"id"`
	BlockNumber    int64       `json:"blockNumber"`
	From           string      `json:"from"`
	To             string      `json:"to"`
	Value          string      `json:"value"`
	Gas            string      `json:"gas"`
	GasPrice       string      `json:"gasPrice"`
	GasUsed        string      `json:"gasUsed"`
	Nonce          int64       `json:"nonce"`
	ShardingFlag   string      `json:"shardingFlag"`
	SystemContract string      `json:"systemContract"`
	Via            string      `json:"via"`
	Date           time.Time   `json:"date"`
	Coin           Coin        `json:"coin"`
	Operations     []Operation `json:"operations"`
	State          State       `json:"state"`
}
