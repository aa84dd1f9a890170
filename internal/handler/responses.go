package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/ArcFarmia_Go/internal/chain"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// ActionResponse is returned by every intent. A rejected intent is not an
// HTTP error: Applied is false and Result.Reason explains why.
type ActionResponse struct {
	Applied bool        `json:"applied"`
	Result  farm.Result `json:"result"`
	View    farm.View   `json:"view"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "status", status, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", opName, "status", status, "error", err)
	}

	resp := ErrorResponse{Error: msg}
	if status == http.StatusBadGateway {
		resp.Reason = chain.Reason(err)
	}
	respondJSON(w, status, resp)
}

// respondAction writes the outcome of an intent together with the fresh view
func respondAction(w http.ResponseWriter, r *http.Request, f farm.Service, opName string, res farm.Result, err error) {
	if err != nil && !errors.Is(err, domain.ErrActionRejected) {
		respondServiceError(w, r, opName, err)
		return
	}
	if err != nil {
		logger.FromContext(r.Context()).Debug(LogMsgActionRejected, "operation", opName, "reason", res.Reason)
		if res.Reason == "" {
			res.Reason = err.Error()
		}
	}
	respondJSON(w, http.StatusOK, ActionResponse{
		Applied: err == nil && res.Applied,
		Result:  res,
		View:    f.View(),
	})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
	ErrMsgInvalidTileError   = "That field tile does not exist"
	ErrMsgInvalidSlotError   = "That barn slot does not exist"
	ErrMsgUnknownEntryError  = "Unknown crop, animal, product or quest"
	ErrMsgInvalidSaveError   = "Save data is invalid"
	ErrMsgSaveNotFoundError  = "No save found"
	ErrMsgNotConnectedError  = "Connect your wallet first"
	ErrMsgNoWalletError      = "No wallet available. Chain features are disabled."
	ErrMsgChainFailedError   = "The chain request failed"
	ErrMsgRevertedError      = "The transaction was reverted"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidTile):
		return http.StatusBadRequest, ErrMsgInvalidTileError
	case errors.Is(err, domain.ErrInvalidSlot):
		return http.StatusBadRequest, ErrMsgInvalidSlotError
	case errors.Is(err, domain.ErrUnknownCatalogEntry):
		return http.StatusBadRequest, unwrapMessage(err, ErrMsgUnknownEntryError)
	case errors.Is(err, domain.ErrInvalidSnapshot):
		return http.StatusBadRequest, ErrMsgInvalidSaveError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrSaveNotFound):
		return http.StatusNotFound, ErrMsgSaveNotFoundError
	case errors.Is(err, domain.ErrWalletNotConnected):
		return http.StatusForbidden, ErrMsgNotConnectedError
	case errors.Is(err, domain.ErrWalletUnavailable):
		return http.StatusServiceUnavailable, ErrMsgNoWalletError
	case errors.Is(err, domain.ErrTransactionReverted):
		return http.StatusBadGateway, ErrMsgRevertedError
	case errors.Is(err, domain.ErrChainUnavailable):
		return http.StatusBadGateway, ErrMsgChainFailedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// unwrapMessage returns err's message when it is short enough to show
func unwrapMessage(err error, fallback string) string {
	if msg := err.Error(); msg != "" && len(msg) < 200 {
		return msg
	}
	return fallback
}
