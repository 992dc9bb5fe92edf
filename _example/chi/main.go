// Command chi validates a pets API served by a chi router.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then try:
//
//	curl -i 'localhost:8080/pets?limit=500'
//	curl -i -XPOST localhost:8080/pets -d '{"name":"rex","tags":["a","a"]}'
package main

import (
	"net/http"
	"os"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	v "github.com/Gobd/swaggervalidation"
	"github.com/Gobd/swaggervalidation/openapi"
	"github.com/Gobd/swaggervalidation/transform"
)

const swagger = `{
	"swagger": "2.0",
	"info": {"title": "Pets (chi)", "version": "0.1.0"},
	"consumes": ["application/json"],
	"paths": {
		"/pets": {
			"get": {
				"operationId": "listPets",
				"parameters": [{"name": "limit", "in": "query", "type": "integer", "minimum": 1, "maximum": 100, "x-coerce": true}],
				"responses": {"200": {"description": "pets", "schema": {"type": "array", "items": {"$ref": "#/definitions/Pet"}}}}
			},
			"post": {
				"operationId": "createPet",
				"parameters": [{"name": "pet", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Pet"}}],
				"responses": {"201": {"description": "created"}}
			}
		}
	},
	"definitions": {
		"Pet": {
			"type": "object",
			"required": ["name"],
			"properties": {
				"name": {"type": "string", "pattern": "^[a-z]+$"},
				"tags": {"type": "array", "uniqueItems": true, "items": {"type": "string"}}
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
	validator, err := v.New(doc, v.WithLogger(logger), v.WithStrictRouting(true))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build validator")
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(validator.Middleware(
		v.WithBodyTransform(transform.TrimSpace),
		v.WithRequestErrorHandler(func(w http.ResponseWriter, r *http.Request, err *v.ValidationErrors) {
			logger.Warn().Str("operation", err.OperationID()).Err(err).Msg("rejected request")
			v.WriteError(w, r, err)
		}),
	))

	r.Get("/pets", func(w http.ResponseWriter, r *http.Request) {
		req, _ := v.RequestFromContext(r.Context())
		limit, _ := req.Query["limit"].(int64)
		if limit == 0 {
			limit = 10
		}
		pets := make([]map[string]any, 0, limit)
		for range min(limit, 3) {
			pets = append(pets, map[string]any{"name": "rex"})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(pets)
	})
	r.Post("/pets", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	logger.Info().Str("addr", ":8080").Msg("listening")
	if err := http.ListenAndServe(":8080", r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
