package serverutils

import (
	"knowex-be/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}

// ErrorHandlerMiddleware turns errors returned further down the chain into
// the JSON error envelope.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		appErr := ToAppError(err)
		if appErr.Status >= fiber.StatusInternalServerError && log != nil {
			log.Error("HTTP", "Unhandled error", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}

		return ctx.Status(appErr.Status).JSON(ErrorResponseWithDetail(appErr))
	}
}
