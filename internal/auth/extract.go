package auth

import (
	"net/http"
	"strings"
)

// ExtractAccessToken pulls the bearer credential from a request. The
// access_token cookie wins over the Authorization header so browser
// clients keep working alongside API clients.
func ExtractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
