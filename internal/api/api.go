package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/api/controller"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/cache"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/logger"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/store"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/service/complaints"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/service/favorites"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/service/menu"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/service/report"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/service/selection"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/service/waste"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store, menuCache cache.Cache) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.RequestID())
	svc.router.Use(requestContextMiddleware)
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperKeyCORSOrigins),
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	cntrl := controller.NewController(controller.Services{
		Store:      st,
		Reports:    report.NewService(st),
		Resolver:   selection.NewResolver(st),
		Favorites:  favorites.NewService(st),
		Waste:      waste.NewService(st),
		Complaints: complaints.NewService(st),
		Menu:       menu.NewService(st, menuCache, viper.GetDuration(constants.ViperKeyMenuCacheTTL)),
	})

	api := svc.router.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/login", cntrl.Login)

	locations := api.Group("/locations", svc.AuthMiddleware)
	locations.GET("/list", cntrl.ListLocations)

	reports := api.Group("/reports", svc.AuthMiddleware)
	reports.GET("/presets", cntrl.ListPresets)
	reports.GET("/presets/:id", cntrl.GetPreset)
	reports.GET("/range", cntrl.BuildRange)
	reports.POST("/compare", cntrl.Compare)
	reports.POST("/submit", cntrl.SubmitWasteReport)

	favs := api.Group("/favorites", svc.AuthMiddleware)
	favs.GET("/list", cntrl.ListFavorites)
	favs.GET("/:id/details", cntrl.GetFavoriteDetails)
	favs.POST("/create", cntrl.CreateFavorite)
	favs.DELETE("/:id", cntrl.DeleteFavorite)

	menus := api.Group("/menu", svc.AuthMiddleware)
	menus.GET("/locations", cntrl.ListMenuLocations)
	menus.GET("/weekly/:location_id", cntrl.GetWeeklyMenu)

	compl := api.Group("/complaints", svc.AuthMiddleware)
	compl.POST("/create", cntrl.CreateComplaint)
	compl.GET("/list", cntrl.ListComplaints)
	compl.POST("/:id/reply", cntrl.ReplyComplaint, svc.ManagerMiddleware)

	return svc, nil
}
