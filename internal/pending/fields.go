package pending

const (
	KeyBlockHash      = "blockHash"
	KeyBlockNumber    = "blockNumber"
	KeyFrom           = "from"
	KeyTo             = "to"
	KeyGas            = "gas"
	KeyGasPrice       = "gasPrice"
	KeyHash           = "hash"
	KeyValue          = "value"
	KeyNonce          = "nonce"
	KeyShardingFlag   = "shardingFlag"
	KeySystemContract = "systemContract"
	KeyVia            = "via"
)

// Fields is the typed view of a raw node transaction object. A nil field means
// the key was absent, null or not a string.
type Fields struct {
	BlockHash      *string
	BlockNumber    *string
	From           *string
	To             *string
	Gas            *string
	GasPrice       *string
	Hash           *string
	Value          *string
	Nonce          *string
	ShardingFlag   *string
	SystemContract *string
	Via            *string
}

// DecodeFields picks every known key out of raw. Unknown keys are ignored.
func DecodeFields(raw map[string]any) Fields {
	return Fields{
		BlockHash:      text(raw, KeyBlockHash),
		BlockNumber:    text(raw, KeyBlockNumber),
		From:           text(raw, KeyFrom),
		To:             text(raw, KeyTo),
		Gas:            text(raw, KeyGas),
		GasPrice:       text(raw, KeyGasPrice),
		Hash:           text(raw, KeyHash),
		Value:          text(raw, KeyValue),
		Nonce:          text(raw, KeyNonce),
		ShardingFlag:   text(raw, KeyShardingFlag),
		SystemContract: text(raw, KeySystemContract),
		Via:            text(raw, KeyVia),
	}
}

func text(raw map[string]any, key string) *string {
	s, ok := raw[key].(string)
	if !ok {
		return nil
	}
	return &s
}
