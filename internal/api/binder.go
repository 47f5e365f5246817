package api

import (
	"github.com/labstack/echo/v4"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
)

type requestBinder struct {
	base echo.DefaultBinder
}

func NewBinder() *requestBinder {
	return &requestBinder{}
}

func (b *requestBinder) Bind(i interface{}, ctx echo.Context) error {
	if err := b.base.Bind(i, ctx); err != nil {
		return constants.NewValidationError("malformed request body")
	}
	return nil
}
