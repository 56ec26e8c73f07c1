package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

type ErrorBody struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// HandleError maps the service error taxonomy to HTTP status codes.
// Unclassified errors are treated as internal.
func HandleError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := err.Error()

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindValidation:
			status = fiber.StatusBadRequest
		case apperror.KindNotFound:
			status = fiber.StatusNotFound
		case apperror.KindInvalidState:
			status = fiber.StatusConflict
		case apperror.KindDependency:
			status = fiber.StatusBadGateway
		}
		message = appErr.Message
	}

	return ctx.Status(status).JSON(ErrorResponse(status, message))
}

// ErrorHandlerMiddleware converts errors escaping a handler into the shared
// error body instead of fiber's default text response.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return HandleError(ctx, err)
	}
}
