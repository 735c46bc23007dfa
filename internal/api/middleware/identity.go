package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mcoot/blackjack-go/internal/api/apierr"
	"github.com/mcoot/blackjack-go/internal/model"
)

// Identity headers. The player id is trusted as sent; the chat platform
// in front of the API has already authenticated the user.
const (
	PlayerIDHeader   = "X-Player-ID"
	PlayerNameHeader = "X-Player-Name"
)

type contextKey string

const playerContextKey contextKey = "player"

// Identity requires a player id header and stores the player in the context
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			player, ok := playerFromHeaders(r)
			if !ok {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), playerContextKey, &player)))
		})
	}
}

// OptionalIdentity stores the player if the headers name one
func OptionalIdentity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if player, ok := playerFromHeaders(r); ok {
				r = r.WithContext(context.WithValue(r.Context(), playerContextKey, &player))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// playerFromHeaders reads the identity; the display name defaults to the id
func playerFromHeaders(r *http.Request) (model.Player, bool) {
	id := strings.TrimSpace(r.Header.Get(PlayerIDHeader))
	if id == "" {
		return model.Player{}, false
	}
	name := strings.TrimSpace(r.Header.Get(PlayerNameHeader))
	if name == "" {
		name = id
	}
	return model.Player{ID: model.PlayerID(id), DisplayName: name}, true
}

// GetPlayer returns the identified player from the request context
func GetPlayer(ctx context.Context) *model.Player {
	player, _ := ctx.Value(playerContextKey).(*model.Player)
	return player
}

// MustGetPlayer returns the identified player or panics
func MustGetPlayer(ctx context.Context) *model.Player {
	player := GetPlayer(ctx)
	if player == nil {
		panic("no player in context - identity middleware not applied?")
	}
	return player
}
