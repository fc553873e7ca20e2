package handlers

import (
	"gamestore-backend/internal/services"
	"gamestore-backend/internal/utils"
	"gamestore-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GameHandler struct {
	service services.GameService
	logger  *logrus.Logger
}

func NewGameHandler(service services.GameService, logger *logrus.Logger) *GameHandler {
	return &GameHandler{
		service: service,
		logger:  logger,
	}
}

// CreateGame godoc
// @Summary Create a game
// @Description Create a game for an existing console. Titles are unique per console.
// @Tags games
// @Accept json
// @Produce json
// @Param game body GameRequest true "Game request object"
// @Success 201 {object} models.Game "Game created"
// @Failure 409 {object} utils.StandardResponse "Game already exists or console does not exist"
// @Failure 422 {object} utils.StandardResponse "Invalid request body"
// @Router /games [post]
func (h *GameHandler) CreateGame(c *fiber.Ctx) error {
	doc, err := validation.GameSchema.Validate(c.Body())
	if err != nil {
		return validationFailed(c, err)
	}
	req := gameRequestFrom(doc)

	game, err := h.service.Create(c.UserContext(), req.Title, req.ConsoleID)
	if err != nil {
		return serviceFailed(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(game)
}

// GetAllGames godoc
// @Summary List games
// @Description List every game with its console embedded
// @Tags games
// @Produce json
// @Success 200 {array} models.Game "List of games"
// @Router /games [get]
func (h *GameHandler) GetAllGames(c *fiber.Ctx) error {
	games, err := h.service.List(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get games")
		return err
	}

	return c.Status(fiber.StatusOK).JSON(games)
}

// GetGameByID godoc
// @Summary Get game by ID
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} models.Game "Game details"
// @Failure 400 {object} utils.StandardResponse "Invalid game ID"
// @Failure 404 {object} utils.StandardResponse "Game not found"
// @Router /games/{id} [get]
func (h *GameHandler) GetGameByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid game ID")
	}

	game, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceFailed(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(game)
}
