package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/blackjack-go/internal/api/apierr"
	"github.com/mcoot/blackjack-go/internal/middleware"
)

// Recovery keeps a panicking game handler from taking the server down. API
// clients get the usual JSON error envelope with an INTERNAL_ERROR code.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, writeInternalError)
}

func writeInternalError(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
