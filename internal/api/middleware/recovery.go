package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nahidff/likebot/internal/api/apierr"
	"github.com/nahidff/likebot/internal/middleware"
)

// Recovery creates panic recovery middleware for the API.
// Returns JSON error responses on panic.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(apierr.ErrorResponse{
		Error: apierr.APIError{
			Code:    apierr.CodeInternalError,
			Message: "Internal server error",
		},
	})
}
