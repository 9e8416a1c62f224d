package payoutValidator

import (
	"fmt"
	"strings"

	"paydash/config"
	"paydash/middleware"
	"paydash/payoutapi"

	"github.com/gofiber/fiber/v2"
)

var transferModes = map[string]bool{
	"IMPS": true,
	"NEFT": true,
	"RTGS": true,
}

// SendMoney validator middleware. Mode bounds come from configuration,
// not hard-coded business law. A violation fails here, before any
// network call is issued.
func SendMoney() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(payoutapi.SendMoneyRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Beneficiary
		if strings.TrimSpace(reqData.BeneficiaryID) == "" {
			errors["beneficiaryId"] = "Beneficiary id is required!"
		}

		// Validate Amount
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0"
		}

		// Validate Comment
		if strings.TrimSpace(reqData.Comment) == "" {
			errors["comment"] = "Comment is required"
		} else if len(reqData.Comment) > 100 {
			errors["comment"] = "Comment must be less than 100 characters"
		}

		// Validate Remarks
		if len(reqData.Remarks) > 200 {
			errors["remarks"] = "Remarks must be less than 200 characters"
		}

		// Validate Transfer Mode
		if !transferModes[reqData.TransferType] {
			errors["transferType"] = "Please select a payment mode"
		} else if errors["amount"] == "" {
			cfg := config.AppConfig
			if reqData.TransferType == "IMPS" && reqData.Amount > cfg.IMPSMaxAmount {
				errors["amount"] = fmt.Sprintf("IMPS transactions cannot exceed ₹%.0f", cfg.IMPSMaxAmount)
			}
			if reqData.TransferType == "RTGS" && reqData.Amount < cfg.RTGSMinAmount {
				errors["amount"] = fmt.Sprintf("RTGS transactions must be at least ₹%.0f", cfg.RTGSMinAmount)
			}
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated payment to the next handler
		c.Locals("validatedSendMoney", reqData)
		return c.Next()
	}
}

// Pagination validator middleware
func Pagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pageNumber := c.QueryInt("pageNumber", 0)
		pageSize := c.QueryInt("pageSize", 10)

		errors := make(map[string]string)

		// Validate Page
		if pageNumber < 0 {
			errors["pageNumber"] = "Page number must not be negative!"
		}

		// Validate Size
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

// CheckStatus validator middleware
func CheckStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Query("orderId")) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"orderId": "Order id is required!",
			})
		}
		return c.Next()
	}
}

// TransactionDetails validator middleware
func TransactionDetails() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pageNumber := c.QueryInt("pageNumber", 0)
		pageSize := c.QueryInt("pageSize", 10)

		errors := make(map[string]string)

		if strings.TrimSpace(c.Query("beneficiaryId")) == "" {
			errors["beneficiaryId"] = "Beneficiary id is required!"
		}
		if pageNumber < 0 {
			errors["pageNumber"] = "Page number must not be negative!"
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
