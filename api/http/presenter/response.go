package presenter

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-screening/pkg/errs"
	"github.com/artem13815/resume-screening/pkg/job"
	"github.com/artem13815/resume-screening/pkg/upload"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// FromError maps a domain error to its HTTP status and envelope.
// Тела ошибок не содержат стеков и внутренних деталей, только вид и текст.
func FromError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	kind := errs.KindOf(err)

	switch {
	case errors.Is(err, upload.ErrTooLarge):
		status = fiber.StatusRequestEntityTooLarge
	case errors.Is(err, upload.ErrUnsupportedType):
		status = fiber.StatusUnsupportedMediaType
	case errors.Is(err, job.ErrNotFound):
		status = fiber.StatusNotFound
		kind = errs.KindNotFound
	case kind == errs.KindValidation:
		status = fiber.StatusBadRequest
	case kind == errs.KindNotFound:
		status = fiber.StatusNotFound
	case kind == errs.KindConflict:
		status = fiber.StatusConflict
	case kind == errs.KindTransport:
		status = fiber.StatusServiceUnavailable
	}

	// Клиенту уходит только Message: без префикса kind и без обёрнутой причины.
	msg := err.Error()
	var de *errs.Error
	if errors.As(err, &de) {
		msg = de.Message
	}
	if status == fiber.StatusInternalServerError {
		// Internal details never leak to clients.
		msg = "internal error"
		kind = errs.KindInternal
	}
	return JSON(c, status, ErrorResponse{Message: msg, Kind: string(kind)})
}
