package utils

import (
	stderrors "errors"

	"mabportal/internal/errors"

	"github.com/gofiber/fiber/v2"
)

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// Created sends a successful JSON response with status 201.
func Created(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusCreated, data)
}

// BadRequest sends a JSON error response with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusBadRequest, fiber.Map{"error": message})
}

// Unauthorized sends a JSON error response with status 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusUnauthorized, fiber.Map{"error": message})
}

// Forbidden sends a JSON error response with status 403.
func Forbidden(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusForbidden, fiber.Map{"error": message})
}

// NotFound sends a JSON error response with status 404.
func NotFound(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusNotFound, fiber.Map{"error": message})
}

// InternalError sends a JSON error response with status 500.
func InternalError(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusInternalServerError, fiber.Map{"error": message})
}

// DomainErrorResponse maps a domain error kind to the matching HTTP status.
// Anything that is not a DomainError surfaces as a 500 so transient storage
// failures are never dressed up as empty results.
func DomainErrorResponse(c *fiber.Ctx, err error) error {
	var domainErr *errors.DomainError
	if !stderrors.As(err, &domainErr) {
		return InternalError(c, "internal server error")
	}

	status := fiber.StatusInternalServerError
	switch domainErr.Kind {
	case errors.KindUnauthorized:
		status = fiber.StatusUnauthorized
	case errors.KindForbidden:
		status = fiber.StatusForbidden
	case errors.KindNotFound:
		status = fiber.StatusNotFound
	case errors.KindValidation:
		status = fiber.StatusUnprocessableEntity
	case errors.KindInvalidState, errors.KindConflict:
		status = fiber.StatusConflict
	}

	return Respond(c, status, fiber.Map{
		"error": domainErr.Message,
		"code":  domainErr.Code,
	})
}
