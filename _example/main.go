// Command example validates an orders API served by net/http.
//
// Run:
//
//	go run ./_example
//
// Then try:
//
//	curl -i -XPOST localhost:8080/orders -d '{"customer_name":"","item_count":"x"}'
//	curl -i localhost:8080/orders/abc
//	curl localhost:8080/metrics
//
// The Swagger UI is served at http://localhost:8080/docs/.
package main

import (
	"net/http"
	"os"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	v "github.com/Gobd/swaggervalidation"
	"github.com/Gobd/swaggervalidation/openapi"
)

const swagger = `{
	"swagger": "2.0",
	"info": {"title": "Orders", "version": "0.1.0"},
	"consumes": ["application/json"],
	"paths": {
		"/orders": {
			"post": {
				"operationId": "createOrder",
				"parameters": [{"name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Order"}}],
				"responses": {"201": {"description": "created", "schema": {"$ref": "#/definitions/Order"}}}
			}
		},
		"/orders/{id}": {
			"get": {
				"operationId": "getOrder",
				"parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "minimum": 1, "x-coerce": true}],
				"responses": {"200": {"description": "order", "schema": {"$ref": "#/definitions/Order"}}}
			}
		}
	},
	"definitions": {
		"Order": {
			"type": "object",
			"required": ["customer_name", "item_count"],
			"properties": {
				"customer_name": {"type": "string", "minLength": 1, "maxLength": 200},
				"item_count": {"type": "integer", "minimum": 1},
				"total": {"type": "number", "minimum": 0, "exclusiveMinimum": true}
			}
		}
	}
}`

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var raw openapi2.T
	if err := json.Unmarshal([]byte(swagger), &raw); err != nil {
		logger.Fatal().Err(err).Msg("failed to parse swagger document")
	}
	doc, err := openapi.FromV2(&raw)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to convert swagger document")
	}

	reg := prometheus.NewRegistry()
	validator, err := v.New(doc,
		v.WithLogger(logger.Level(zerolog.DebugLevel)),
		v.WithMetrics(v.NewMetrics(reg)),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build validator")
	}

	api := http.NewServeMux()
	api.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		req, _ := v.RequestFromContext(r.Context())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(req.Body)
	})
	api.HandleFunc("GET /orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		req, _ := v.RequestFromContext(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"customer_name": "order " + r.PathValue("id"),
			"item_count":    req.PathParams["id"],
		})
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.Handle("/docs/", openapi.DocsHandlerMust("/docs/", &raw))
	mux.Handle("/", validator.Middleware(v.WithResponseValidation(nil))(api))

	logger.Info().Str("addr", ":8080").Msg("listening")
	if err := http.ListenAndServe(":8080", mux); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
