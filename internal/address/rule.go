package address

import (
	"github.com/jellydator/validation"
)

const DefaultMessage = "Invalid Moac Address"

var ErrRuleInvalid = validation.NewError("validation_is_address", DefaultMessage)

// Rule is a validation.Rule that accepts only valid addresses. Unlike most
// rules it does not skip empty values: a missing address is a violation.
type Rule struct {
	err validation.Error
}

func NewRule() Rule {
	return Rule{err: ErrRuleInvalid}
}

// Error returns a copy of the rule reporting message on failure.
func (r Rule) Error(message string) Rule {
	r.err = r.errOrDefault().SetMessage(message)
	return r
}

func (r Rule) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return r.errOrDefault()
	}

	s, ok := value.(string)
	if !ok || !IsValid(s) {
		return r.errOrDefault()
	}

	return nil
}

func (r Rule) errOrDefault() validation.Error {
	if r.err == nil {
		return ErrRuleInvalid
	}
	return r.err
}
