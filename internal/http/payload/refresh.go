package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

const maxRefreshHashes = 100

var hashRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

type RefreshRequest struct {
	Hashes []string `json:"hashes"`
}

func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Hashes,
			validation.Required,
			validation.Length(1, maxRefreshHashes),
			validation.Each(validation.Match(hashRegex)),
		),
	)
}

// ValidateHash checks a single transaction hash taken from a path segment.
func ValidateHash(hash string) error {
	return validation.Validate(hash, validation.Required, validation.Match(hashRegex))
}
