// Package response standardizes JSON response bodies across handlers.
package response

import (
	stderrors "errors"
	"log"

	"agrimart/internal/errors"
	"agrimart/internal/repositories"
	"agrimart/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// ValidationErrors returns a 400 with a field error map.
func ValidationErrors(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": fields,
	})
}

var notFoundErrs = []error{
	repositories.ErrUserNotFound,
	repositories.ErrVendorNotFound,
	repositories.ErrProductNotFound,
	repositories.ErrOrderNotFound,
	repositories.ErrAddressNotFound,
	repositories.ErrArticleNotFound,
	repositories.ErrFavoriteNotFound,
	repositories.ErrDiscountNotFound,
	repositories.ErrFlashSaleNotFound,
}

var conflictErrs = []error{
	repositories.ErrEmailTaken,
	repositories.ErrDiscountCodeTaken,
	repositories.ErrArticleSlugTaken,
}

// FromError is the single translation boundary from service errors to
// HTTP. Domain errors keep their code and message; repository not-found
// sentinels map to 404 and uniqueness sentinels to 409; field validation
// errors map to 400; anything else is logged and hidden behind a
// generic 500.
func FromError(c *fiber.Ctx, err error) error {
	var domainErr *errors.DomainError
	if stderrors.As(err, &domainErr) {
		return c.Status(statusFor(domainErr.Code)).JSON(fiber.Map{
			"error": domainErr.Message,
			"code":  domainErr.Code,
		})
	}
	for _, sentinel := range notFoundErrs {
		if stderrors.Is(err, sentinel) {
			return NotFound(c, sentinel.Error())
		}
	}
	for _, sentinel := range conflictErrs {
		if stderrors.Is(err, sentinel) {
			return Error(c, fiber.StatusConflict, sentinel.Error())
		}
	}
	var fieldErr validation.ValidationError
	if stderrors.As(err, &fieldErr) {
		return ValidationErrors(c, map[string]string{fieldErr.Field: fieldErr.Message})
	}
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(c, "resource not found")
	}
	log.Printf("unexpected error: %v", err)
	return ServerError(c, "Internal server error")
}

func statusFor(code string) int {
	switch code {
	case "VENDOR_NOT_APPROVED", "VENDOR_PENDING", "ACCOUNT_BLOCKED", "ACCOUNT_SUSPENDED", "NOT_OWNER":
		return fiber.StatusForbidden
	case "INVALID_TRANSITION", "INVALID_QUANTITY", "OUT_OF_STOCK",
		"DISCOUNT_NOT_USABLE", "ORDER_NOT_CANCELLABLE", "INVALID_ORDER_STATUS":
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusBadRequest
	}
}
