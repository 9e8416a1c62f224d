package beneficiaryValidator

import (
	"regexp"
	"strings"

	"paydash/middleware"
	"paydash/payoutapi"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// Helper to validate mobile number format
func isValidMobile(mobile string) bool {
	re := regexp.MustCompile(`^\d{10}$`)
	return re.MatchString(mobile)
}

// Helper to validate IFSC code format
func isValidIFSC(ifsc string) bool {
	re := regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	return re.MatchString(ifsc)
}

// Helper to validate PAN format
func isValidPAN(pan string) bool {
	re := regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	return re.MatchString(pan)
}

// Helper to validate Aadhaar format
func isValidAadhaar(aadhaar string) bool {
	re := regexp.MustCompile(`^\d{12}$`)
	return re.MatchString(aadhaar)
}

// AddBeneficiary validator middleware
func AddBeneficiary() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(payoutapi.AddBeneficiaryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.BeneficiaryName) == "" {
			errors["beneficiaryName"] = "Beneficiary name is required!"
		}

		// Validate PAN
		if !isValidPAN(reqData.BeneficiaryPanNumber) {
			errors["beneficiaryPanNumber"] = "Invalid PAN format. Should be like ABCDE1234F"
		}

		// Validate Mobile
		if !isValidMobile(reqData.BeneficiaryMobileNumber) {
			errors["beneficiaryMobileNumber"] = "Mobile number should be 10 digits"
		}

		// Validate Email if provided
		if reqData.BeneficiaryEmail != "" && !isValidEmail(reqData.BeneficiaryEmail) {
			errors["beneficiaryEmail"] = "Invalid email format"
		}

		// Validate Aadhaar
		if !isValidAadhaar(reqData.BeneficiaryAadhaarNumber) {
			errors["beneficiaryAadhaarNumber"] = "Aadhaar number must be 12 digits"
		}

		// Validate IFSC
		if !isValidIFSC(reqData.BeneficiaryIfscCode) {
			errors["beneficiaryIfscCode"] = "Invalid IFSC code format"
		}

		// Validate Account Number
		if strings.TrimSpace(reqData.BeneficiaryAccountNumber) == "" {
			errors["beneficiaryAccountNumber"] = "Account number is required!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated payload to the next handler
		c.Locals("validatedBeneficiary", reqData)
		return c.Next()
	}
}

// UpdateBeneficiary validator middleware. Only the IFSC code can change.
func UpdateBeneficiary() fiber.Handler {
	return func(c *fiber.Ctx) error {
		beneficiaryID := c.Query("beneficiaryId")
		ifscCode := c.Query("beneficiaryIfscCode")

		errors := make(map[string]string)

		if strings.TrimSpace(beneficiaryID) == "" {
			errors["beneficiaryId"] = "Beneficiary id is required!"
		}

		if !isValidIFSC(ifscCode) {
			errors["beneficiaryIfscCode"] = "Invalid IFSC code format"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// BeneficiaryDetails validator middleware
func BeneficiaryDetails() fiber.Handler {
	return func(c *fiber.Ctx) error {
		mobile := c.Query("beneficiaryMobileNumber")

		errors := make(map[string]string)

		if !isValidMobile(mobile) {
			errors["beneficiaryMobileNumber"] = "Mobile number should be 10 digits"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
