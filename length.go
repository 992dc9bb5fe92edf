package swaggervalidation

import validation "github.com/go-ozzo/ozzo-validation/v4"

// minLength returns the rules for a lower bound on the length of a string, in runes, or
// of a sequence. ozzo skips empty values, so Required rejects those.
func minLength(n int, code Code) []validation.Rule {
	if n <= 0 {
		return nil
	}
	return []validation.Rule{
		validation.Required.ErrorObject(messages[code]),
		validation.RuneLength(n, 0).ErrorObject(messages[code]),
	}
}

// maxLength returns the rule for an upper bound. ozzo reads a zero maximum as no limit,
// so zero means Empty.
func maxLength(n int, code Code) validation.Rule {
	if n <= 0 {
		return validation.Empty.ErrorObject(messages[code])
	}
	return validation.RuneLength(0, n).ErrorObject(messages[code])
}
