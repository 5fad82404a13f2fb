package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

const (
	codeInternal    = "INTERNAL_ERROR"
	codeRateLimited = "RATE_LIMITED"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		statusCode := getStatusCode(domainErr.Code)
		if statusCode == http.StatusUnauthorized {
			h.logger.Debug("request rejected", zap.String("path", r.URL.Path), zap.String("code", domainErr.Code))
		}
		writeError(w, statusCode, domainErr.Code, domainErr.Message)
		return
	}

	h.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeUnauthenticated, domain.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case domain.CodeForbidden:
		return http.StatusForbidden
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeConflict, domain.CodeUserExists:
		return http.StatusConflict
	case domain.CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// decodeJSON разбирает тело запроса; ошибка разбора превращается в BAD_REQUEST
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewBadRequestError("invalid request body")
	}
	return nil
}
