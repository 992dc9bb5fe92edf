package openapi

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/getkin/kin-openapi/openapi2"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
window.ui = SwaggerUIBundle({url: "docs.json", dom_id: "#swagger-ui"});
</script>
</body>
</html>
`))

// DocsHandler returns an http.Handler that serves the Swagger UI for doc, and the
// document itself at docs.json. The prefix is stripped automatically, so just mount it:
//
//	http.Handle("/docs/", openapi.DocsHandlerMust("/docs/", doc))
func DocsHandler(prefix string, doc *openapi2.T) (http.Handler, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if _, err := FromV2(doc); err != nil {
		return nil, err
	}

	specJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, map[string]any{"Title": doc.Info.Title}); err != nil {
		return nil, err
	}
	index := buf.Bytes()

	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "", "/":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(index)
		case "docs.json", "/docs.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(specJSON)
		default:
			http.NotFound(w, r)
		}
	})), nil
}

// DocsHandlerMust is like DocsHandler but panics on error.
func DocsHandlerMust(prefix string, doc *openapi2.T) http.Handler {
	h, err := DocsHandler(prefix, doc)
	if err != nil {
		panic(err)
	}
	return h
}
