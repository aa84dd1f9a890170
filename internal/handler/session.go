package handler

import (
	"net/http"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
)

// SessionSource reports the current wallet session
type SessionSource interface {
	Session() domain.Session
}

// RequireSession rejects requests with 403 until a wallet is connected.
// The farm sits behind the connect-wallet screen, so nothing mutates it
// without a session.
func RequireSession(src SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !src.Session().Connected {
				respondServiceError(w, r, "RequireSession", domain.ErrWalletNotConnected)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
