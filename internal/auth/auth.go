// Package auth carries the caller's bearer token from the HTTP layer to
// the dispatch layer through context.Context.
//
// The MCP transport owns the HTTP request; tool handlers only see a
// context. The streamable HTTP server is therefore configured with
// FromRequest as its context function so every dispatch can read the
// presented token back out with TokenFromContext.
package auth

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
)

type tokenKey struct{}

// FromRequest extracts the bearer token from the Authorization header and
// stores it in the context. A missing or non-Bearer header stores the
// empty string, which never matches a configured secret.
func FromRequest(ctx context.Context, r *http.Request) context.Context {
	return ContextWithToken(ctx, ParseBearer(r.Header.Get("Authorization")))
}

// ContextWithToken returns a context carrying the given bearer token.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the bearer token stored by FromRequest, or the
// empty string when none is present.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// ParseBearer returns the token portion of an "Authorization: Bearer x"
// header value. The scheme comparison is case-insensitive per RFC 6750.
func ParseBearer(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// Equal compares two tokens in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
