package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"

	"lapak/internal/models"
	"lapak/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// decodeStrict decodes the request body into dst, rejecting unknown fields.
// Fiber's BodyParser silently drops unknown fields, which would hide client
// typos from the per-field diagnostics.
func decodeStrict(c *fiber.Ctx, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// malformedRequest responds with 400 for an unparsable payload.
func malformedRequest(c *fiber.Ctx, err error) error {
	log.Printf("Error parsing request body: %v", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// validationFailed responds with 400 and the per-field error list.
func validationFailed(c *fiber.Ctx, errs models.FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errs,
	})
}

// serviceError maps a service error to the matching response: field errors to
// 400, missing records to 404, anything else to 500 with fallbackMsg.
func serviceError(c *fiber.Ctx, err error, fallbackMsg string) error {
	var errs models.FieldErrors
	if errors.As(err, &errs) {
		return validationFailed(c, errs)
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	log.Printf("%s: %v", fallbackMsg, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": fallbackMsg,
		"error":   err.Error(),
	})
}
