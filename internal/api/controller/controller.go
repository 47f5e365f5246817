package controller

import (
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/store"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/service/complaints"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/service/favorites"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/service/menu"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/service/report"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/service/selection"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/service/waste"
)

type Services struct {
	Store      store.Store
	Reports    *report.Service
	Resolver   *selection.Resolver
	Favorites  *favorites.Service
	Waste      *waste.Service
	Complaints *complaints.Service
	Menu       *menu.Service
}

type Controller struct {
	svc Services
}

func NewController(svc Services) *Controller {
	return &Controller{svc: svc}
}
