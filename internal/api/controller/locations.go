package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) ListLocations(ctx echo.Context) error {
	locations, err := c.svc.Store.ListActiveLocations(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, locations)
}
