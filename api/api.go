// Package api holds the OpenAPI contract of the todo service.
package api

import _ "embed"

// Spec is the raw OpenAPI 3 document describing the todo API.
//
//go:embed openapi.yaml
var Spec []byte
