package api

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/logger"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/utils"
)

// AuthMiddleware accepts the auth token from the cookie or a Bearer header
// and stores the claimed identity on the request context.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		raw := ""
		if cookie, err := ctx.Cookie(constants.CookieKeyAuthToken); err == nil {
			raw = cookie.Value
		} else if header := ctx.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
			raw = strings.TrimPrefix(header, "Bearer ")
		}
		if raw == "" {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(raw)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, token.UserID)
		ctx.Set(constants.CtxKeyUserRole, token.Role)

		return next(ctx)
	}
}

// ManagerMiddleware gates manager-only routes. The role claim is asserted by
// the client at login, so this is a UX gate rather than a security boundary.
func (svc *APIService) ManagerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		role, _ := ctx.Get(constants.CtxKeyUserRole).(string)
		if role != constants.RoleManager {
			return constants.ErrForbidden
		}
		return next(ctx)
	}
}

// requestContextMiddleware puts echo's request id into the logger context.
func requestContextMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		rid := ctx.Response().Header().Get(echo.HeaderXRequestID)
		req := ctx.Request()
		ctx.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), rid)))
		return next(ctx)
	}
}
