package handlers

import (
	"encoding/json"
	"net/http"

	"todoapi/internal/generated/openapi"

	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are already written; all that is left is to log it.
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("encoding response failed")
	}
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, openapi.Error{Error: msg})
}

// paramErrorHandler answers parameter binding failures of the generated
// wrapper, e.g. a non-numeric todo id.
func paramErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, http.StatusBadRequest, err.Error())
}
