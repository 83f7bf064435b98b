package http

import (
	"encoding/json"
	"net/http"

	"bibliophile/internal/notify"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
}

type ErrorResponseBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func JSONSuccess(w http.ResponseWriter, data interface{}, meta interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func JSONSuccessCreated(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Data:    data,
	})
}

func JSONError(w http.ResponseWriter, statusCode int, code string, message string, details []ErrorDetail) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// statusForCode maps store notice codes onto HTTP statuses. Remote
// collaborators (record store, catalog) failing surfaces as a bad gateway.
func statusForCode(code string) int {
	switch code {
	case notify.CodeAuthRequired:
		return http.StatusUnauthorized
	case notify.CodeNotFound:
		return http.StatusNotFound
	case notify.CodeBadInput:
		return http.StatusBadRequest
	case notify.CodeRemoteError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// JSONNotice renders a store outcome. Informational no-ops (duplicates)
// are 200s carrying the message, matching their toast-level severity.
func JSONNotice(w http.ResponseWriter, n notify.Notice, data interface{}) {
	if !n.OK() {
		JSONError(w, statusForCode(n.Code), n.Code, n.Message, nil)
		return
	}
	meta := map[string]string{"message": n.Message}
	if n.Level == notify.LevelInfo && n.Code != "" {
		meta["code"] = n.Code
	}
	JSONSuccess(w, data, meta)
}
