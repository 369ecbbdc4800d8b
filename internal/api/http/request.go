package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"banking-backoffice/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var validate = validator.New()

// decodeJSON parses the request body into dst and runs struct validation on
// the result. Shape failures are reported as invalid input.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.InvalidInputf("Invalid request body: %v.", err)
	}
	if err := validate.Struct(dst); err != nil {
		return apperr.InvalidInputf("Invalid request body: %v.", err)
	}
	return nil
}

// pathID extracts a numeric path variable.
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.InvalidInputf("Invalid %s (%s).", name, raw)
	}
	return id, nil
}
