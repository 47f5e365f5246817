package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) ListMenuLocations(ctx echo.Context) error {
	locations, err := c.svc.Menu.Locations(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, locations)
}

func (c *Controller) GetWeeklyMenu(ctx echo.Context) error {
	weekly, err := c.svc.Menu.WeeklyMenu(ctx.Request().Context(), ctx.Param("location_id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, weekly)
}
