package payload

import (
	"txmerge/internal/core"

	"github.com/jellydator/validation"
)

type Coin struct {
	Index  int    `json:"index"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

func (c Coin) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Symbol, validation.Required, validation.Length(1, 16)),
		validation.Field(&c.Name, validation.Length(0, 64)),
		validation.Field(&c.Index, validation.Min(0)),
	)
}

// PendingRequest carries a node transaction object as the node sent it.
// Its fields are deliberately left untyped; the parser decides what they mean.
type PendingRequest struct {
	Coin        Coin           `json:"coin"`
	Transaction map[string]any `json:"transaction"`
}

func (p PendingRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Coin),
		validation.Field(&p.Transaction, validation.Required),
	)
}

func (p PendingRequest) ToCoreCoin() core.Coin {
	return core.Coin{
		Index:  p.Coin.Index,
		Symbol: p.Coin.Symbol,
		Name:   p.Coin.Name,
	}
}
