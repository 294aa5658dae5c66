package payload

import (
	"txmerge/internal/address"

	"github.com/jellydator/validation"
)

type AddressRequest struct {
	Address string `json:"address"`

	rule address.Rule
}

func NewAddressRequest(addr string, rule address.Rule) AddressRequest {
	return AddressRequest{Address: addr, rule: rule}
}

func (a AddressRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Address, a.rule),
	)
}
