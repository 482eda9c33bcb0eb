package httpmw

import (
	"encoding/json"
	"net/http"

	"github.com/tair/packing-checklist/pkg/apperrors"
	"github.com/tair/packing-checklist/pkg/logger"
)

// Response is the JSON envelope of every API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondOK sends a successful envelope
func RespondOK(w http.ResponseWriter, status int, message string, data interface{}) {
	RespondJSON(w, status, Response{Success: true, Message: message, Data: data})
}

// RespondFailure sends a failed envelope with an explicit status
func RespondFailure(w http.ResponseWriter, status int, code apperrors.Kind, message string) {
	RespondJSON(w, status, Response{Success: false, Error: message, Code: string(code)})
}

// RespondError maps err to its status and sends a failed envelope.
// Store failures are logged and answered with a generic message.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperrors.KindOf(err)
	status := StatusFor(kind)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context()).
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Request failed")
		kind = apperrors.KindStore
	}
	RespondFailure(w, status, kind, apperrors.PublicMessage(err))
}

// StatusFor returns the HTTP status of an error kind
func StatusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindNotFound, apperrors.KindNotFavorite:
		return http.StatusNotFound
	case apperrors.KindAlreadyDeleted, apperrors.KindInvalidInput:
		return http.StatusBadRequest
	case apperrors.KindAlreadyShared, apperrors.KindAlreadyUnshared:
		return http.StatusConflict
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindItemReviewDeleted:
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}
