package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// PublicMetadataKey marks operations that skip bearer-token validation.
const PublicMetadataKey = "public"

type userContextKey struct{}

// tokenParser validates a bearer token and returns the user it was issued for.
type tokenParser interface {
	ParseToken(token string) (uuid.UUID, error)
}

// Middleware validates the Authorization header on every non-public
// operation and stores the authenticated user ID in the request context.
func Middleware(api huma.API, parser tokenParser) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if isPublic(ctx.Operation()) {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := parser.ParseToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid token")
			return
		}

		next(huma.WithValue(ctx, userContextKey{}, userID))
	}
}

// UserID returns the authenticated user ID stored by the middleware.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userContextKey{}).(uuid.UUID)
	return userID, ok
}

// WithUserID returns a context carrying the given user ID. Used by handler
// tests to simulate an authenticated request.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userContextKey{}, userID)
}

func isPublic(op *huma.Operation) bool {
	if op == nil || op.Metadata == nil {
		return false
	}
	public, _ := op.Metadata[PublicMetadataKey].(bool)
	return public
}
