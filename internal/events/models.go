package events

import "time"

const TypePendingTransaction = "transaction.pending"

// TransactionEvent is the message value published for every merged
// pending transaction.
type TransactionEvent struct {
	Type        string    `json:"type"`
	ID          string    `json:"id"`
	CoinIndex   int       `json:"coinIndex"`
	CoinSymbol  string    `json:"coinSymbol"`
	State       string    `json:"state"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Value       string    `json:"value"`
	Nonce       int64     `json:"nonce"`
	BlockNumber int64     `json:"blockNumber"`
	Operations  int       `json:"operations"`
	Date        time.Time `json:"date"`
}
