package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain/dto"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
)

func (c *Controller) ListFavorites(ctx echo.Context) error {
	userID, _ := ctx.Get(constants.CtxKeyUserID).(string)
	favs, err := c.svc.Favorites.List(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, favs)
}

func (c *Controller) GetFavoriteDetails(ctx echo.Context) error {
	details, err := c.svc.Favorites.Details(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, details)
}

func (c *Controller) CreateFavorite(ctx echo.Context) error {
	var req dto.CreateFavoriteRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	userID, _ := ctx.Get(constants.CtxKeyUserID).(string)
	id, err := c.svc.Favorites.Save(ctx.Request().Context(), userID, req.Name, req.LocationIDs, req.WasteTypes)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, dto.CreateFavoriteResponse{ID: id})
}

func (c *Controller) DeleteFavorite(ctx echo.Context) error {
	userID, _ := ctx.Get(constants.CtxKeyUserID).(string)
	if err := c.svc.Favorites.Delete(ctx.Request().Context(), ctx.Param("id"), userID); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
