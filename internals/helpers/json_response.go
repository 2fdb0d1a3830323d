// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

// Error codes used across the API. Every handler maps failures onto one of
// these so clients can branch without parsing messages.
const (
	CodeBadRequest       = "bad_request"
	CodeValidationError  = "validation_error"
	CodeNotFound         = "not_found"
	CodeDuplicateError   = "duplicate_error"
	CodeUnsupportedMedia = "unsupported_media"
	CodeDBError          = "db_error"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Status bool      `json:"status"`
	Error  ErrorBody `json:"error"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return CodeBadRequest
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusUnprocessableEntity:
		return CodeValidationError
	case fiber.StatusConflict:
		return CodeDuplicateError
	case fiber.StatusUnsupportedMediaType:
		return CodeUnsupportedMedia
	default:
		if status >= 500 {
			return CodeDBError
		}
		return "error"
	}
}

// JsonError: generic failure with the code derived from the HTTP status.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{
		Status: false,
		Error:  ErrorBody{Code: statusToErrorCode(status), Message: message},
	})
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonOK: success envelope for detail fetches and composite views.
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": true,
		"data":   data,
	})
}

// JsonCreated: success envelope for POST.
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": true,
		"data":   data,
	})
}

// JsonUpdated: success envelope for PUT.
func JsonUpdated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": true,
		"data":   data,
	})
}

// JsonDeleted: success envelope for DELETE.
func JsonDeleted(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": true,
		"data":   data,
	})
}

// JsonList: list payload (rows plus any counts/widgets/dropdown extras the
// caller merged into data) with the pagination envelope under meta.
func JsonList(c *fiber.Ctx, data any, meta any) error {
	body := fiber.Map{
		"status": true,
		"data":   data,
	}
	if meta != nil {
		body["meta"] = meta
	}
	return c.Status(fiber.StatusOK).JSON(body)
}
