package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/millennial404/mesto-project-plus/internal/shared"
)

// Error is the terminal stage for every failed request. Typed errors keep
// their status code and message; anything else is an unexpected fault and
// is reported as a generic 500 with the detail logged, never echoed.
func Error(w http.ResponseWriter, logger *slog.Logger, err error) {
	var typed *shared.Error
	if errors.As(err, &typed) {
		JSON(w, typed.StatusCode, ErrorBody{
			Status:     "error",
			StatusCode: typed.StatusCode,
			Message:    typed.Message,
		})
		return
	}
	if logger != nil {
		logger.Error("unexpected fault", slog.Any("error", err))
	}
	JSON(w, http.StatusInternalServerError, ErrorBody{
		Status:     "error",
		StatusCode: http.StatusInternalServerError,
		Message:    "internal server error",
	})
}
