package swaggervalidation

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

// formatChecker reports whether value is valid for a string format. node carries
// format options such as x-isemail.
type formatChecker func(value string, node *Schema) bool

var formats = map[string]formatChecker{
	"byte":      func(string, *Schema) bool { return true },
	"binary":    func(string, *Schema) bool { return true },
	"password":  func(string, *Schema) bool { return true },
	"date":      func(s string, _ *Schema) bool { return isDate(s) },
	"date-time": func(s string, _ *Schema) bool { return isDate(s) },
	"dateTime":  func(s string, _ *Schema) bool { return isDate(s) },
	"email":     isEmail,
	"hostname":  func(s string, _ *Schema) bool { return govalidator.IsDNSName(s) || govalidator.IsIPv6(s) },
	"ipv4":      func(s string, _ *Schema) bool { return govalidator.IsIPv4(s) },
	"ipv6":      func(s string, _ *Schema) bool { return govalidator.IsIPv6(s) },
	"uri":       isURI,
}

// format checks str, of n runes, against the node's format.
func (s *state) format(str string, n int, node *Schema, f field) {
	if n > maxFormatLength {
		s.fail(CodeStringTooLong, map[string]any{"name": f.name, "length": n}, str)
		return
	}
	check, ok := formats[node.Format]
	if !ok {
		s.fail(CodeUnknownFormat, map[string]any{"name": f.name, "format": node.Format}, str)
		return
	}
	if !check(str, node) {
		s.fail(CodeInvalidFormat, map[string]any{"name": f.name, "format": node.Format}, str)
	}
}

// isURI accepts absolute URIs only.
func isURI(s string, _ *Schema) bool {
	return govalidator.IsRequestURI(s) && !strings.HasPrefix(s, "/")
}

// isEmail checks an address, honouring the x-isemail options checkDNS and minDomainAtoms.
func isEmail(s string, node *Schema) bool {
	opts, _ := node.Extensions[ExtIsEmail].(map[string]any)
	if check, _ := opts["checkDNS"].(bool); check {
		if !govalidator.IsExistingEmail(s) {
			return false
		}
	} else if !govalidator.IsEmail(s) {
		return false
	}
	if atoms, ok := toFloat(opts["minDomainAtoms"]); ok {
		domain := s[strings.LastIndexByte(s, '@')+1:]
		if float64(len(strings.Split(domain, "."))) < atoms {
			return false
		}
	}
	return true
}
