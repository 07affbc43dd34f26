package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// errorDetail is the machine-readable error body shared by every endpoint.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse wraps errorDetail the way the front end expects.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// respondJSON writes v as a JSON body with the given status code.
// Encoding failures at this point can only be programming errors; they are
// ignored because the status line has already been sent.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError writes a structured error body.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// decodeJSON reads the request body into dst, rejecting unknown fields so
// typos in client payloads fail loudly instead of being dropped.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return nil
}

// validationMessage extracts the human-readable part from a wrapped
// validation sentinel, e.g.
// "service.RegistrationService.Create: validation error: email is required"
// → "email is required".
func validationMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
