package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain/dto"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/service/report"
)

// Compare resolves the selection token into a scope and runs the two-range
// comparison over it.
func (c *Controller) Compare(ctx echo.Context) error {
	var req dto.CompareRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	userID, _ := ctx.Get(constants.CtxKeyUserID).(string)

	locations, err := c.svc.Store.ListActiveLocations(reqCtx)
	if err != nil {
		return fmt.Errorf("list locations: %w", err)
	}
	favs, err := c.svc.Store.ListFavorites(reqCtx, userID)
	if err != nil {
		return fmt.Errorf("list favorites: %w", err)
	}

	scope := c.svc.Resolver.Resolve(reqCtx, req.Selection, locations, favs)

	result, err := c.svc.Reports.Compare(reqCtx, report.CompareParams{
		LocationIDs: scope.LocationIDs,
		WasteTypes:  scope.WasteTypes,
		RangeA:      toRangeBounds(req.RangeA),
		RangeB:      toRangeBounds(req.RangeB),
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.CompareResponse{
		Label:      scope.Label,
		IsFavorite: scope.IsFavorite,
		WasteTypes: scope.WasteTypes,
		Result:     result,
	})
}

func toRangeBounds(r dto.CompareRange) report.RangeBounds {
	return report.RangeBounds{
		DayFrom: r.DayFrom,
		DayTo:   r.DayTo,
		FromTs:  r.FromTs,
		ToTs:    r.ToTs,
	}
}
