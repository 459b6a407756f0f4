// handlers/routes.go
package handlers

import (
	"charades-game-service/services"

	"github.com/gofiber/fiber/v2"
)

func SetupMovieRoutes(app *fiber.App, catalog *services.CatalogService) {
	app.Get("/movies", catalog.GetAllMovies)
	app.Get("/movies/random", catalog.GetRandomMovie)

	// Administrative: wipes and re-inserts the built-in catalog.
	app.Post("/seed-movies", catalog.ReseedMovies)
}

func SetupGameRoutes(app *fiber.App, sessions *services.SessionService) {
	app.Get("/stats", sessions.GetStats)

	app.Post("/games", sessions.CreateGame)
	// Registered before /games/:id so "share" is never read as a game id.
	app.Get("/games/share/:code", sessions.GetGameByShareCode)
	app.Get("/games/:id", sessions.GetGame)
	app.Post("/games/:id/turn", sessions.SubmitTurn)
	app.Post("/games/:id/join", sessions.JoinGame)
	app.Post("/games/:id/add-used-movie", sessions.AddUsedMovie)
	app.Post("/games/:id/reset-pool", sessions.ResetUsedMovies)
	app.Delete("/games/:id", sessions.DeleteGame)
}
