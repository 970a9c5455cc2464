package serverutils

import (
	"knowex-be/internal/repository/memory"
	"knowex-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

const (
	SessionHeader   = "X-Session-Id"
	SessionQuery    = "session"
	sessionLocalKey = "session"
)

// SessionMiddleware resolves the X-Session-Id header (or the session query
// parameter) to a live session and stores it in the request locals.
func SessionMiddleware(repo *memory.SessionRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Get(SessionHeader)
		if id == "" {
			id = ctx.Query(SessionQuery)
		}
		if id == "" {
			return ErrSessionRequired
		}

		session, ok := repo.Get(id)
		if !ok {
			return ErrSessionNotFound
		}

		ctx.Locals(sessionLocalKey, session)
		return ctx.Next()
	}
}

// CurrentSession returns the session resolved by SessionMiddleware.
func CurrentSession(ctx *fiber.Ctx) *store.Session {
	session, _ := ctx.Locals(sessionLocalKey).(*store.Session)
	return session
}
