package controller

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain/dto"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/utils"
)

// Login is the mock role switch of the app's login screen: any name plus a
// role yields a signed token. There is no user registry.
func (c *Controller) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	// Deterministic id per name so favorites survive a re-login.
	userID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(req.Name)).String()
	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{
		UserID: userID,
		Role:   req.Role,
	})
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:  token,
		UserID: userID,
		Role:   req.Role,
	})
}
