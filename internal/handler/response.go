package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/eshop-platform/payment-service/internal/domain"
)

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Error   *APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func RespondSuccess(w http.ResponseWriter, status int, data any) {
	RespondJSON(w, status, APIResponse{Success: true, Data: data})
}

func RespondAppError(w http.ResponseWriter, appErr *AppError, details any) {
	RespondJSON(w, appErr.Status, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: details,
		},
	})
}

// RespondCommandError maps a command handler failure onto the transport.
// Gateway-side kinds surface as an upstream failure carrying the cause text;
// anything else is an internal error.
func RespondCommandError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrProcessorRejected),
		errors.Is(err, domain.ErrNetworkFailure),
		errors.Is(err, domain.ErrDecodeFailure):
		RespondAppError(w, ErrPaymentProcessor, err.Error())
	default:
		slog.Error("unhandled command error", "error", err)
		RespondAppError(w, ErrInternalError, nil)
	}
}
