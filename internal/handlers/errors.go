package handlers

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"gamestore-backend/internal/services"
	"gamestore-backend/internal/utils"
	"gamestore-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// parseID accepts any all-digit id. Values too large for a uint are clamped,
// no row can carry them so the lookup reports not found.
func parseID(c *fiber.Ctx) (uint, bool) {
	raw := c.Params("id")
	if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
		return 0, false
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id > math.MaxUint {
		return math.MaxUint, true
	}
	return uint(id), true
}

func validationFailed(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return utils.ErrorWithDataResponse(c, fiber.StatusUnprocessableEntity, verr.Error(), verr.Violations)
	}
	return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, err.Error())
}

// serviceFailed maps the service error taxonomy onto HTTP statuses. Anything
// unrecognised is handed to the app error handler as a 500.
func serviceFailed(c *fiber.Ctx, log *logrus.Logger, err error) error {
	switch {
	case errors.Is(err, services.ErrConflict):
		log.WithError(err).WithField("path", c.Path()).Debug("Request conflicted")
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error())
	default:
		return err
	}
}
