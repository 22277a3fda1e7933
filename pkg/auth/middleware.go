package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/worklink/worklink/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

// CookieName carries the session token for browser clients.
const CookieName = "auth_token"

// AuthMiddleware resolves the caller identity from, in this order: the
// session cookie, the Authorization bearer header, an auth_token field in
// the JSON body. The order is a contract with downstream authorization and
// must not change. The first token that verifies wins; the body is restored
// for the next handler.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jwtService := &JWTService{}

		for _, token := range candidateTokens(r) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				continue
			}
			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	})
}

func candidateTokens(r *http.Request) []string {
	var tokens []string

	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		tokens = append(tokens, cookie.Value)
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokens = append(tokens, strings.TrimPrefix(authHeader, "Bearer "))
	}

	if token := bodyToken(r); token != "" {
		tokens = append(tokens, token)
	}

	return tokens
}

// bodyToken peeks at a JSON body for a last-resort auth_token field, then
// restores the body so handlers can decode it again.
func bodyToken(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}
	raw, err := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return ""
	}

	var payload struct {
		AuthToken string `json:"auth_token"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.AuthToken
}
