package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/framecraft/framepos/internal/catalog"
	"github.com/framecraft/framepos/internal/pricing"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// writeQuoteError maps pricing and catalog failures onto HTTP statuses:
// engine validation errors are the client's bad input (400), unknown catalog
// references are unprocessable (422), anything else is a server fault.
func writeQuoteError(w http.ResponseWriter, err error) {
	var dimErr *pricing.InvalidDimensionError
	var priceErr *pricing.InvalidPriceError
	var cfgErr *pricing.ConfigurationError

	switch {
	case errors.As(err, &dimErr), errors.As(err, &priceErr), errors.As(err, &cfgErr):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "failed to price order")
	}
}
