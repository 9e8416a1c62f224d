package bulkPaymentValidator

import (
	"strings"

	"paydash/middleware"

	"github.com/gofiber/fiber/v2"
)

// BatchList validator middleware
func BatchList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pageNumber := c.QueryInt("pageNo", 0)
		pageSize := c.QueryInt("pageSize", 10)

		errors := make(map[string]string)

		if pageNumber < 0 {
			errors["pageNo"] = "Page number must not be negative!"
		}
		if pageSize < 1 {
			errors["pageSize"] = "Page size must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("pageNumber", pageNumber)
		c.Locals("pageSize", pageSize)
		return c.Next()
	}
}

// BatchDetails validator middleware
func BatchDetails() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Query("transactionId")) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"transactionId": "Transaction id is required!",
			})
		}
		return c.Next()
	}
}

// Decision validator middleware. status must be an explicit true/false;
// the confirmation step happens in the view, not here.
func Decision() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		if strings.TrimSpace(c.Query("transactionId")) == "" {
			errors["transactionId"] = "Transaction id is required!"
		}

		status := c.Query("status")
		if status != "true" && status != "false" {
			errors["status"] = "Status must be true or false!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("approve", status == "true")
		return c.Next()
	}
}
