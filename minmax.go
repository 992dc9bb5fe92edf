package swaggervalidation

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/woodsbury/decimal128"
)

// thresholdRule is an ozzo ThresholdRule that knows the code it reports. ozzo accepts
// empty values without comparing them, so zero is compared here.
type thresholdRule struct {
	validation.ThresholdRule
	code      Code
	threshold float64
	min       bool
	exclusive bool
}

func minRule(threshold float64, exclusive bool) thresholdRule {
	r := thresholdRule{validation.Min(threshold), CodeBelowMinimum, threshold, true, exclusive}
	if exclusive {
		r.ThresholdRule = r.ThresholdRule.Exclusive()
		r.code = CodeBelowExclusiveMinimum
	}
	return r
}

func maxRule(threshold float64, exclusive bool) thresholdRule {
	r := thresholdRule{validation.Max(threshold), CodeExceedsMaximum, threshold, false, exclusive}
	if exclusive {
		r.ThresholdRule = r.ThresholdRule.Exclusive()
		r.code = CodeExceedsExclusiveMaximum
	}
	return r
}

// Validate checks a float64 against the threshold.
func (r thresholdRule) Validate(value any) error {
	if n, ok := value.(float64); !ok || n != 0 {
		return r.ThresholdRule.Validate(value)
	}
	t := r.threshold
	if !r.min {
		t = -t
	}
	if t > 0 || r.exclusive && t == 0 {
		return messages[r.code]
	}
	return nil
}

// multipleOf returns a rule accepting numbers that divide evenly by of. Both are
// compared as the shortest decimals that print them, so 0.3 is a multiple of 0.1.
func multipleOf(of float64) validation.Rule {
	den := decimal(of)
	return validation.By(func(value any) error {
		n, ok := value.(float64)
		if !ok {
			return messages[CodeNotMultiple]
		}
		if _, rem := decimal(n).QuoRem(den); !rem.IsZero() {
			return messages[CodeNotMultiple]
		}
		return nil
	})
}

func decimal(f float64) decimal128.Decimal {
	d, _ := decimal128.Parse(strconv.FormatFloat(f, 'g', -1, 64))
	return d
}

// bounds checks minimum, maximum and multipleOf. A bound of zero is enforced like any
// other. value is the number as given and is used in messages.
func (s *state) bounds(n float64, value any, node *Schema, f field) {
	if node.Minimum != nil {
		if r := minRule(*node.Minimum, node.ExclusiveMinimum); r.Validate(n) != nil {
			s.fail(r.code, map[string]any{"name": f.name, "value": value, "minimum": *node.Minimum}, value)
		}
	}

	if node.Maximum != nil {
		if r := maxRule(*node.Maximum, node.ExclusiveMaximum); r.Validate(n) != nil {
			s.fail(r.code, map[string]any{"name": f.name, "value": value, "maximum": *node.Maximum}, value)
		}
	}

	if node.MultipleOf != nil && *node.MultipleOf != 0 {
		if err := validation.Validate(n, multipleOf(*node.MultipleOf)); err != nil {
			s.fail(CodeNotMultiple, map[string]any{"name": f.name, "value": value, "multipleOf": *node.MultipleOf}, value)
		}
	}
}
