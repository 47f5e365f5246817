package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/daterange"
)

func (c *Controller) ListPresets(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, daterange.ListPresets(time.Now()))
}

func (c *Controller) GetPreset(ctx echo.Context) error {
	id := daterange.PresetID(ctx.Param("id"))
	preset := daterange.GetPreset(ctx.Request().Context(), id, time.Now())
	return ctx.JSON(http.StatusOK, preset)
}
