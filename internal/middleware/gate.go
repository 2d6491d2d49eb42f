package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
)

const bearerPrefix = "Bearer "

// PublicRoutes is the allow-list of paths the gate lets through without an
// identity.
type PublicRoutes struct {
	paths    map[string]struct{}
	prefixes []string
}

func NewPublicRoutes(paths, prefixes []string) PublicRoutes {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[normalizePath(p)] = struct{}{}
	}
	return PublicRoutes{paths: set, prefixes: prefixes}
}

// Match reports whether path is public.
func (r PublicRoutes) Match(path string) bool {
	if _, ok := r.paths[normalizePath(path)]; ok {
		return true
	}
	for _, prefix := range r.prefixes {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func normalizePath(p string) string {
	if p == "/" || p == "" {
		return "/"
	}
	return strings.TrimRight(p, "/")
}

// AccessGate authenticates every non-public request. OPTIONS requests pass.
// On public paths a valid bearer token still attaches its identity, but an
// invalid one is ignored.
func AccessGate(verifier auth.Verifier, public PublicRoutes) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions {
			return c.Next()
		}

		token, hasToken := bearerToken(c.Get(fiber.HeaderAuthorization))

		if public.Match(c.Path()) {
			if hasToken {
				if id, err := safeVerify(c.UserContext(), verifier, token); err == nil {
					identity.Attach(c, id)
				}
			}
			return c.Next()
		}

		if !hasToken {
			return unauthorized(c, "Authentication required")
		}
		id, err := safeVerify(c.UserContext(), verifier, token)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}
		identity.Attach(c, id)
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

// safeVerify turns a verifier panic into a rejection.
func safeVerify(ctx context.Context, v auth.Verifier, token string) (id identity.Identity, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("token verifier panicked", "action", "verify_token", "error", fmt.Sprint(r))
			id, err = identity.Identity{}, auth.ErrRejected
		}
	}()
	id, err = v.Verify(ctx, token)
	if err == nil && id.UserID == "" {
		err = auth.ErrRejected
	}
	return id, err
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: message, Code: "UNAUTHENTICATED",
	})
}
