package pending

// PendingTransaction is a node transaction with every quantity in base 10.
type PendingTransaction struct {
	BlockHash      string
	BlockNumber    string
	From           string
	To             string
	Gas            string
	GasPrice       string
	Hash           string
	Value          string
	Nonce          int64
	ShardingFlag   string
	SystemContract string
	Via            string

	// Defaulted lists the keys whose value is a fallback, not node data.
	Defaulted []string
}

// NonceUnknown marks a nonce that was missing or could not be read.
const NonceUnknown int64 = -1

func (p PendingTransaction) NonceKnown() bool {
	return p.Nonce != NonceUnknown
}
