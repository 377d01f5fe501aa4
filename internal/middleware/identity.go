package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/service"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	actorKey = "actor"
)

// Identity reads the caller identity set by the authenticating gateway.
// Token verification happens upstream; this service only consumes the
// resulting facts.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderUserID)
			if id != "" {
				role := c.Request().Header.Get(HeaderUserRole)
				if role == "" {
					role = service.RoleParticipant
				}
				c.Set(actorKey, service.Actor{ID: id, Role: role})
			}
			return next(c)
		}
	}
}

// ActorFrom returns the authenticated actor, if any.
func ActorFrom(c echo.Context) (service.Actor, bool) {
	actor, ok := c.Get(actorKey).(service.Actor)
	return actor, ok && actor.ID != ""
}
