package utils

import "github.com/gofiber/fiber/v2"

// StandardResponse is the envelope used for error replies. Successful replies
// carry the bare resource.
type StandardResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func statusText(code int) string {
	if code >= 500 {
		return "fail"
	}
	return "error"
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  statusText(code),
		Code:    code,
		Message: message,
	})
}

// ErrorWithDataResponse sends an error response with additional data
func ErrorWithDataResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  statusText(code),
		Code:    code,
		Message: message,
		Data:    data,
	})
}
