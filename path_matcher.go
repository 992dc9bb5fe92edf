package swaggervalidation

import (
	"fmt"
	"regexp"
	"strings"
)

// PathMatcher matches request paths against a path template like "/pets/{petId}"
// and extracts the bound parameter values.
type PathMatcher struct {
	template   string
	regex      *regexp.Regexp
	paramNames []string
}

// NewPathMatcher compiles a path template. A trailing slash on the request path is tolerated.
func NewPathMatcher(template string) (*PathMatcher, error) {
	if template == "" {
		return nil, fmt.Errorf("path template cannot be empty")
	}

	var buf strings.Builder
	buf.WriteString("^")

	var paramNames []string
	i := 0
	for i < len(template) {
		if template[i] != '{' {
			next := strings.IndexByte(template[i:], '{')
			if next == -1 {
				next = len(template) - i
			}
			buf.WriteString(regexp.QuoteMeta(template[i : i+next]))
			i += next
			continue
		}

		end := strings.IndexByte(template[i:], '}')
		if end == -1 {
			return nil, fmt.Errorf("unclosed path parameter at position %d in template %q", i, template)
		}
		name := template[i+1 : i+end]
		if name == "" {
			return nil, fmt.Errorf("empty path parameter at position %d in template %q", i, template)
		}
		for _, existing := range paramNames {
			if existing == name {
				return nil, fmt.Errorf("duplicate path parameter %q in template %q", name, template)
			}
		}
		paramNames = append(paramNames, name)
		buf.WriteString("([^/]+)")
		i += end + 1
	}

	if !strings.HasSuffix(template, "/") {
		buf.WriteString("/?")
	}
	buf.WriteString("$")

	regex, err := regexp.Compile(buf.String())
	if err != nil {
		return nil, fmt.Errorf("failed to compile path pattern for template %q: %w", template, err)
	}

	return &PathMatcher{
		template:   template,
		regex:      regex,
		paramNames: paramNames,
	}, nil
}

// Match reports whether path matches the template and returns the bound parameters.
func (pm *PathMatcher) Match(path string) (bool, map[string]string) {
	matches := pm.regex.FindStringSubmatch(path)
	if matches == nil || len(matches) != len(pm.paramNames)+1 {
		return false, nil
	}

	params := make(map[string]string, len(pm.paramNames))
	for i, name := range pm.paramNames {
		params[name] = matches[i+1]
	}
	return true, params
}

// Template returns the path template.
func (pm *PathMatcher) Template() string {
	return pm.template
}

// ParamNames returns the parameter names in order of appearance.
func (pm *PathMatcher) ParamNames() []string {
	return pm.paramNames
}
