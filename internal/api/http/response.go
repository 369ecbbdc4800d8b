package http

import (
	"encoding/json"
	"net/http"

	"banking-backoffice/internal/apperr"
	"banking-backoffice/internal/logger"
)

// apiResponse is the envelope every JSON response is wrapped in. Data is
// always a collection, even for single-resource reads.
type apiResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// writeData writes a success envelope with the given status code.
func writeData(w http.ResponseWriter, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(apiResponse{Code: code, Message: message, Data: data}); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError translates err into its HTTP status and writes an error envelope.
func writeError(w http.ResponseWriter, err error) {
	status := apperr.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs.
		logger.Error("Request failed", "error", err)
		message = "Internal server error."
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(apiResponse{Code: status, Message: message}); encErr != nil {
		logger.Error("Failed to encode error response", "error", encErr)
	}
}
