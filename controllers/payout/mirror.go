package payoutController

import (
	"log"
	"time"

	"paydash/database"
	"paydash/models"
	"paydash/payoutapi"
)

// mirrorPayoutOrder records a freshly accepted payout locally so the
// status poller can track it. Skipped when no database is connected.
func mirrorPayoutOrder(req *payoutapi.SendMoneyRequest, result *payoutapi.SendMoneyResult) {
	if database.Database.Db == nil || result.OrderID == "" {
		return
	}

	order := models.PayoutOrder{
		OrderID:         result.OrderID,
		BeneficiaryID:   req.BeneficiaryID,
		BeneficiaryName: req.BeneficiaryName,
		Amount:          req.Amount,
		TransferType:    req.TransferType,
		Comment:         req.Comment,
		Remarks:         req.Remarks,
		Status:          result.Status,
	}
	if order.Status == "" {
		order.Status = "PENDING"
	}

	if err := database.Database.Db.Create(&order).Error; err != nil {
		log.Println("Failed to record payout order:", err)
	}
}

// refreshPayoutOrder updates the local mirror after a status check.
func refreshPayoutOrder(orderID string, status *payoutapi.PayoutStatus, statusText string) {
	if database.Database.Db == nil || orderID == "" {
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":          statusText,
		"opening_balance": status.OpeningBalance,
		"locked_amount":   status.LockedAmount,
		"charged_amount":  status.ChargedAmount,
		"last_checked_at": &now,
	}

	if err := database.Database.Db.Model(&models.PayoutOrder{}).
		Where("order_id = ?", orderID).
		Updates(updates).Error; err != nil {
		log.Println("Failed to update payout order:", err)
	}
}
