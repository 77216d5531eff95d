package util

import (
	"runtime/debug"

	"github.com/Shank312/ml-resume-scorer/internal/config"
	"github.com/gofiber/fiber/v2"
)

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
}

type OrderedErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

// ErrorResponse sends the standard JSON error envelope. Developer details
// and stack traces only leave the process outside production.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	response := OrderedErrorResponse{
		Success: false,
		Message: params.Message,
	}
	if config.LoadAppConfig().Env != "production" {
		if len(errs) > 0 && errs[0] != nil {
			response.DevMessage = errs[0].Error()
			response.Trace = string(debug.Stack())
		}
		if params.DevMessage != "" {
			response.DevMessage = params.DevMessage
		}
	}

	errorCode := params.Code
	if errorCode == 0 {
		errorCode = fiber.StatusInternalServerError
	}
	return c.Status(errorCode).JSON(response)
}
