package server

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/matzehuels/orgflow/pkg/errors"
	"github.com/matzehuels/orgflow/pkg/store"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	code := apperrors.GetCode(err)
	if code == "" {
		if status == http.StatusNotFound {
			code = apperrors.ErrCodeNotFound
		} else {
			code = apperrors.ErrCodeInternal
		}
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "err", err)
	}
	s.writeJSON(w, status, errorBody{Error: errorDetail{
		Code:    string(code),
		Message: apperrors.UserMessage(err),
	}})
}

// statusForError maps structured error codes and the store sentinel to
// HTTP status codes. Anything unrecognized is a 500.
func statusForError(err error) int {
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound
	}

	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeInvalidChart,
		apperrors.ErrCodeInvalidShape,
		apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidStyle,
		apperrors.ErrCodeInvalidPath,
		apperrors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound,
		apperrors.ErrCodeChartNotFound,
		apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
