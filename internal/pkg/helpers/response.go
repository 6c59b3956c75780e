package helpers

import (
	goerrors "errors"
	"fmt"

	"parking-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// StorageFailureMessage is what clients see for any 5xx.
const StorageFailureMessage = "Database error. Please check the logs for details."

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Message: message,
		Data:    data,
	})
}

// RespError writes typed errors as plain text with their status code. Anything
// else is logged and answered with a generic 500.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	var errString *errors.ErrorString
	if goerrors.As(err, &errString) && errString.Code() < fiber.StatusInternalServerError {
		return ctx.Status(errString.Code()).SendString(errString.Message())
	}

	if log != nil {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("internal error: %v", err))
	}

	return ctx.Status(fiber.StatusInternalServerError).SendString(StorageFailureMessage)
}
