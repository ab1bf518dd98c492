package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"todoapi/api"
	"todoapi/internal/generated/openapi"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

// loadContract parses and validates the embedded OpenAPI document.
func loadContract() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.Spec)
	if err != nil {
		return nil, fmt.Errorf("loading openapi contract: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validating openapi contract: %w", err)
	}
	// Match on paths only, whatever host the service is reached on.
	doc.Servers = nil
	return doc, nil
}

// newBodyValidator checks JSON request bodies against the contract before
// they reach a handler. Parameters are bound and checked by the generated
// wrapper, so only bodies are validated here.
func newBodyValidator(doc *openapi3.T) (openapi.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building openapi router: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := findRoute(router, r)
			if err != nil || route.Operation == nil || route.Operation.RequestBody == nil {
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    &openapi3filter.Options{},
			}
			if err := openapi3filter.ValidateRequestBody(r.Context(), input, route.Operation.RequestBody.Value); err != nil {
				writeError(w, r, http.StatusBadRequest, "Invalid request payload: "+err.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

// findRoute looks r up in the contract, ignoring a trailing slash the same
// way the chi router does.
func findRoute(router routers.Router, r *http.Request) (*routers.Route, map[string]string, error) {
	if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
		trimmed := r.Clone(r.Context())
		trimmed.URL.Path = strings.TrimRight(r.URL.Path, "/")
		trimmed.URL.RawPath = ""
		return router.FindRoute(trimmed)
	}
	return router.FindRoute(r)
}
