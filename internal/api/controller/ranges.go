package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/daterange"
)

// BuildRange materializes one picker selection into a date range.
//
//	?granularity=day&date=2024-02-12
//	?granularity=week&year=2024&week=7
//	?granularity=month&year=2024&month=1   (month is zero-based)
func (c *Controller) BuildRange(ctx echo.Context) error {
	switch ctx.QueryParam("granularity") {
	case "day":
		date, err := time.ParseInLocation("2006-01-02", ctx.QueryParam("date"), time.Local)
		if err != nil {
			return constants.NewValidationError("date must be YYYY-MM-DD")
		}
		return ctx.JSON(http.StatusOK, daterange.BuildDayRange(date))

	case "week":
		year, err := strconv.Atoi(ctx.QueryParam("year"))
		if err != nil {
			return constants.NewValidationError("year must be a number")
		}
		week, err := strconv.Atoi(ctx.QueryParam("week"))
		if err != nil {
			return constants.NewValidationError("week must be a number")
		}
		week = daterange.ClampWeek(year, week)
		return ctx.JSON(http.StatusOK, daterange.BuildIsoWeekRange(year, week))

	case "month":
		year, err := strconv.Atoi(ctx.QueryParam("year"))
		if err != nil {
			return constants.NewValidationError("year must be a number")
		}
		month, err := strconv.Atoi(ctx.QueryParam("month"))
		if err != nil || month < 0 || month > 11 {
			return constants.NewValidationError("month must be 0-11")
		}
		return ctx.JSON(http.StatusOK, daterange.BuildMonthRange(year, month))

	default:
		return constants.NewValidationError("granularity must be day, week or month")
	}
}
