package payoutRoutes

import (
	payoutController "paydash/controllers/payout"
	"paydash/gateway"
	"paydash/middleware"
	beneficiaryValidator "paydash/validators/beneficiary"
	payoutValidator "paydash/validators/payout"

	"github.com/gofiber/fiber/v2"
)

func SetupPayoutRoutes(app *fiber.App) {
	requireSession := middleware.SessionMiddleware(gateway.Sessions)
	payoutGroup := app.Group("/payout")

	payoutGroup.Post("/beneficiary-type", requireSession, payoutController.BeneficiaryTypes)
	payoutGroup.Post("/pay-reason", requireSession, payoutController.PayoutReasons)
	payoutGroup.Post("/add/beneficiary", beneficiaryValidator.AddBeneficiary(), requireSession, payoutController.AddBeneficiary)
	payoutGroup.Get("/beneficiary-details", beneficiaryValidator.BeneficiaryDetails(), requireSession, payoutController.BeneficiaryDetails)
	payoutGroup.Post("/update/beneficiary", beneficiaryValidator.UpdateBeneficiary(), requireSession, payoutController.UpdateBeneficiary)
	payoutGroup.Get("/beneficiary-list", payoutValidator.Pagination(), requireSession, payoutController.BeneficiaryList)
	payoutGroup.Post("/send-money", payoutValidator.SendMoney(), requireSession, payoutController.SendMoney)
	payoutGroup.Get("/check-status", payoutValidator.CheckStatus(), requireSession, payoutController.CheckStatus)
	payoutGroup.Get("/transaction-details", payoutValidator.TransactionDetails(), requireSession, payoutController.TransactionDetails)
	payoutGroup.Get("/all-payout-transaction", payoutValidator.Pagination(), requireSession, payoutController.AllPayoutTransactions)
	payoutGroup.Post("/beneficiaries/bulk-upload", requireSession, payoutController.BulkUpload)
	payoutGroup.Get("/beneficiaries/bulk-upload-template", requireSession, payoutController.BulkUploadTemplate)
	payoutGroup.Get("/dashboard-state", requireSession, payoutController.DashboardState)
}
