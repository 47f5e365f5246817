package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain/dto"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
)

func (c *Controller) CreateComplaint(ctx echo.Context) error {
	var req dto.CreateComplaintRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	userID, _ := ctx.Get(constants.CtxKeyUserID).(string)
	id, err := c.svc.Complaints.Create(ctx.Request().Context(), userID, req.LocationID, req.Title, req.Message)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, dto.CreateComplaintResponse{ID: id})
}

func (c *Controller) ListComplaints(ctx echo.Context) error {
	complaints, err := c.svc.Complaints.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, complaints)
}

func (c *Controller) ReplyComplaint(ctx echo.Context) error {
	var req dto.ReplyComplaintRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	userID, _ := ctx.Get(constants.CtxKeyUserID).(string)
	if err := c.svc.Complaints.Reply(ctx.Request().Context(), ctx.Param("id"), req.Reply, userID); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
