package handlers

import (
	"gamestore-backend/internal/services"
	"gamestore-backend/internal/utils"
	"gamestore-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ConsoleHandler struct {
	service services.ConsoleService
	logger  *logrus.Logger
}

func NewConsoleHandler(service services.ConsoleService, logger *logrus.Logger) *ConsoleHandler {
	return &ConsoleHandler{
		service: service,
		logger:  logger,
	}
}

// CreateConsole godoc
// @Summary Create a console
// @Description Create a console with a unique name
// @Tags consoles
// @Accept json
// @Produce json
// @Param console body ConsoleRequest true "Console request object"
// @Success 201 {object} models.Console "Console created"
// @Failure 409 {object} utils.StandardResponse "Console name already exists"
// @Failure 422 {object} utils.StandardResponse "Invalid request body"
// @Router /consoles [post]
func (h *ConsoleHandler) CreateConsole(c *fiber.Ctx) error {
	doc, err := validation.ConsoleSchema.Validate(c.Body())
	if err != nil {
		return validationFailed(c, err)
	}
	req := consoleRequestFrom(doc)

	console, err := h.service.Create(c.UserContext(), req.Name)
	if err != nil {
		return serviceFailed(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(console)
}

// GetAllConsoles godoc
// @Summary List consoles
// @Tags consoles
// @Produce json
// @Success 200 {array} models.Console "List of consoles"
// @Router /consoles [get]
func (h *ConsoleHandler) GetAllConsoles(c *fiber.Ctx) error {
	consoles, err := h.service.List(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get consoles")
		return err
	}

	return c.Status(fiber.StatusOK).JSON(consoles)
}

// GetConsoleByID godoc
// @Summary Get console by ID
// @Tags consoles
// @Produce json
// @Param id path int true "Console ID"
// @Success 200 {object} models.Console "Console details"
// @Failure 400 {object} utils.StandardResponse "Invalid console ID"
// @Failure 404 {object} utils.StandardResponse "Console not found"
// @Router /consoles/{id} [get]
func (h *ConsoleHandler) GetConsoleByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid console ID")
	}

	console, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceFailed(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(console)
}
