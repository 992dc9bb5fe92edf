// Command gorilla validates requests already routed by gorilla/mux, looking up
// the operation by the matched route template.
//
// Run:
//
//	cd _example/gorilla && go run .
//
// Then try:
//
//	curl -i localhost:8080/users/0
//	curl -i -XPUT localhost:8080/users/7 -d '{"email":"nope"}'
package main

import (
	"io"
	"net/http"
	"os"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	v "github.com/Gobd/swaggervalidation"
	"github.com/Gobd/swaggervalidation/openapi"
)

const swagger = `{
	"swagger": "2.0",
	"info": {"title": "Users (gorilla)", "version": "0.1.0"},
	"paths": {
		"/users/{id}": {
			"parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "minimum": 1, "x-coerce": true}],
			"get": {"operationId": "getUser", "responses": {"200": {"description": "user"}}},
			"put": {
				"operationId": "updateUser",
				"parameters": [{"name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/User"}}],
				"responses": {"204": {"description": "updated"}}
			}
		}
	},
	"definitions": {
		"User": {
			"type": "object",
			"required": ["email"],
			"properties": {
				"email": {"type": "string", "format": "email"},
				"nickname": {"type": "string", "maxLength": 20}
			}
		}
	}
}`

// validated runs the swagger validation for the route gorilla matched.
func validated(validator *v.Validator, logger zerolog.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		template, err := mux.CurrentRoute(r).GetPathTemplate()
		if err != nil {
			next(w, r)
			return
		}
		ov, ok := validator.Operation(r.Method, template)
		if !ok {
			next(w, r)
			return
		}

		req := v.NewRequest(r, mux.Vars(r))
		if r.Body != nil {
			var body any
			if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&body); err == nil {
				req.Body = body
			}
		}
		if errs := ov.ValidateRequest(req); len(errs) > 0 {
			set := &v.ValidationErrors{Operation: ov.Operation(), Path: template, URL: req.URL, Errors: errs}
			logger.Warn().Str("operation", ov.Key()).Int("errors", len(errs)).Msg("rejected request")
			v.WriteError(w, r, set)
			return
		}
		next(w, r)
	}
}

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
	validator, err := v.New(doc, v.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build validator")
	}

	r := mux.NewRouter()
	r.HandleFunc("/users/{id}", validated(validator, logger, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": mux.Vars(r)["id"], "email": "user@example.com"})
	})).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", validated(validator, logger, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).Methods(http.MethodPut)

	logger.Info().Str("addr", ":8080").Msg("listening")
	if err := http.ListenAndServe(":8080", r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
