package swaggervalidation

import validation "github.com/go-ozzo/ozzo-validation/v4"

// inRule is an ozzo InRule for enum. ozzo accepts empty values without looking them up,
// so those are looked up here.
type inRule struct {
	validation.InRule
	values []any
}

func in(values ...any) inRule {
	return inRule{validation.In(values...).ErrorObject(messages[CodeEnum]), values}
}

func (r inRule) Validate(value any) error {
	if !validation.IsEmpty(value) {
		return r.InRule.Validate(value)
	}
	for _, allowed := range r.values {
		if equal(allowed, value) {
			return nil
		}
	}
	return messages[CodeEnum]
}
