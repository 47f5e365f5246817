package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain/dto"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/service/waste"
)

func (c *Controller) SubmitWasteReport(ctx echo.Context) error {
	var req dto.SubmitWasteReportRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	userID, _ := ctx.Get(constants.CtxKeyUserID).(string)

	items := make([]waste.ItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = waste.ItemInput{
			WasteType:   item.WasteType,
			Kg:          item.Kg,
			Description: item.Description,
		}
	}

	id, err := c.svc.Waste.Submit(ctx.Request().Context(), waste.SubmitInput{
		LocationID: req.LocationID,
		CreatedBy:  userID,
		Status:     req.Status,
		Notes:      req.Notes,
		Items:      items,
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, dto.SubmitWasteReportResponse{ID: id})
}
