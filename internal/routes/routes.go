package routes

import (
	"gamestore-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, consoleHandler *handlers.ConsoleHandler, gameHandler *handlers.GameHandler) {
	consoles := app.Group("/consoles")
	{
		consoles.Get("/", consoleHandler.GetAllConsoles)
		consoles.Get("/:id", consoleHandler.GetConsoleByID)
		consoles.Post("/", consoleHandler.CreateConsole)
	}

	games := app.Group("/games")
	{
		games.Get("/", gameHandler.GetAllGames)
		games.Get("/:id", gameHandler.GetGameByID)
		games.Post("/", gameHandler.CreateGame)
	}
}
