package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/blackjack-go/internal/middleware"
)

// Logging logs spectator page requests with the shared request logger
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}
