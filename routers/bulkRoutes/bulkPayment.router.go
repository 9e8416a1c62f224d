package bulkRoutes

import (
	bulkPaymentController "paydash/controllers/bulkpayment"
	"paydash/gateway"
	"paydash/middleware"
	bulkPaymentValidator "paydash/validators/bulkpayment"

	"github.com/gofiber/fiber/v2"
)

func SetupBulkPaymentRoutes(app *fiber.App) {
	requireSession := middleware.SessionMiddleware(gateway.Sessions)
	bulkGroup := app.Group("/payout")

	bulkGroup.Get("/bulk-upload-transaction-ids", bulkPaymentValidator.BatchList(), requireSession, bulkPaymentController.BatchList)
	bulkGroup.Get("/bulk-upload-amount-details-by-transaction-id", bulkPaymentValidator.BatchDetails(), requireSession, bulkPaymentController.BatchDetails)
	bulkGroup.Post("/bulk-upload-payment-accept-or-denied",
		bulkPaymentValidator.Decision(),
		requireSession,
		middleware.RequireUserType("ADMIN", "SUPER_ADMIN"),
		bulkPaymentController.Decision)
}
