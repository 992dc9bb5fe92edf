package swaggervalidation

import "github.com/asaskevich/govalidator"

// dateLayouts are the ISO 8601 forms accepted besides RFC 3339.
var dateLayouts = []string{
	"2006-01-02",
	"20060102",
	"2006-01",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04Z07:00",
}

// isDate accepts ISO 8601 calendar dates and date-times.
func isDate(s string) bool {
	if govalidator.IsRFC3339(s) {
		return true
	}
	for _, layout := range dateLayouts {
		if govalidator.IsTime(s, layout) {
			return true
		}
	}
	return false
}
