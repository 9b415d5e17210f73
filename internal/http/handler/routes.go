package handler

import (
	"github.com/gofiber/fiber/v2"

	"nameapi/internal/service"
)

// Deps are the collaborators shared by all routes.
type Deps struct {
	// DB is pinged by /health; nil when the in-memory store is used.
	DB        Pinger
	Names     service.NameService
	Snapshots service.SnapshotService
}

// RegisterRoutes is the method+path table of the application.
// Paths are registered without trailing slashes; fiber's non-strict routing
// serves /api/names/ and /api/names/1/ as well.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	// REST API
	app.Get("/api/names", ListNames(d.Names))
	app.Post("/api/names", CreateName(d.Names))
	app.Post("/api/names/snapshots", CreateSnapshot(d.Snapshots))
	app.Get("/api/names/:id", GetName(d.Names))
	app.Put("/api/names/:id", UpdateName(d.Names))
	app.Delete("/api/names/:id", DeleteName(d.Names))

	// Pages
	app.Get("/names", NameListPage(d.Names)).Name(RouteNameList)
	app.Get("/names/:pk/update", NameUpdatePage(d.Names)).Name(RouteNameUpdate)
	app.Post("/names/:pk/update", NameUpdatePage(d.Names))
	app.Get("/names/:pk/delete", NameDeletePage(d.Names)).Name(RouteNameDelete)
	app.Post("/names/:pk/delete", NameDeletePage(d.Names))
}
