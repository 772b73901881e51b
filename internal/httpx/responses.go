package httpx

import (
	"encoding/json"
	"log"
	"net/http"

	"bookcatalog/internal/apperr"
)

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeDuplicate  = "DUPLICATE"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Title   string `json:"title,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("encode response failed: error=%v", err)
	}
}

func JSONSuccess(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

func JSONError(w http.ResponseWriter, statusCode int, code string, message string, details []ErrorDetail) {
	JSON(w, statusCode, ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// StatusFor maps an error kind to its HTTP status and error code.
func StatusFor(kind apperr.Kind) (int, string) {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest, CodeValidation
	case apperr.KindDuplicate:
		return http.StatusConflict, CodeDuplicate
	case apperr.KindNotFound:
		return http.StatusNotFound, CodeNotFound
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// WriteError renders err using its kind. fallback is shown when err carries
// no caller-facing message.
func WriteError(w http.ResponseWriter, err error, fallback string) {
	status, code := StatusFor(apperr.KindOf(err))
	JSONError(w, status, code, apperr.MessageOf(err, fallback), nil)
}
