package bulkPaymentController

import (
	"log"
	"time"

	"paydash/database"
	"paydash/dispatch"
	"paydash/gateway"
	"paydash/middleware"
	"paydash/models"
	"paydash/session"
	"paydash/utils"

	"github.com/gofiber/fiber/v2"
)

// BatchList fetches one page of uploaded bulk batches.
func BatchList(c *fiber.Ctx) error {
	pageNumber := c.Locals("pageNumber").(int)
	pageSize := c.Locals("pageSize").(int)

	sess := middleware.SessionFromCtx(c)
	client := gateway.NewClient(sess)

	data, err := gateway.DispatcherFor(sess).Do(dispatch.GroupBulkPaymentIDs, func() (interface{}, error) {
		return client.BulkBatchIDs(pageNumber, pageSize)
	})
	if err != nil {
		return gateway.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bulk batches fetched!", data)
}

// BatchDetails fetches the per-row breakdown of one batch.
func BatchDetails(c *fiber.Ctx) error {
	transactionID := c.Query("transactionId")

	sess := middleware.SessionFromCtx(c)
	client := gateway.NewClient(sess)

	data, err := gateway.DispatcherFor(sess).Do(dispatch.GroupBulkPaymentDetails, func() (interface{}, error) {
		return client.BulkBatchDetails(transactionID)
	})
	if err != nil {
		return gateway.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bulk batch details fetched!", data)
}

// Decision approves or denies a batch. The decision is sent regardless
// of the locally cached batch status; the backend ignores repeats on a
// batch that already left PENDING.
func Decision(c *fiber.Ctx) error {
	transactionID := c.Query("transactionId")
	approve := c.Locals("approve").(bool)

	sess := middleware.SessionFromCtx(c)
	client := gateway.NewClient(sess)
	dispatcher := gateway.DispatcherFor(sess)

	_, err := dispatcher.Do(dispatch.GroupBulkDecision, func() (interface{}, error) {
		env, err := client.BulkDecision(transactionID, approve)
		if err != nil {
			return nil, err
		}
		return env.Message, nil
	})
	if err != nil {
		return gateway.ErrorResponse(c, err)
	}

	recordDecision(transactionID, approve, sess.CurrentUser())

	refreshClient := gateway.NewClient(sess)
	dispatcher.Go(dispatch.GroupBulkPaymentIDs, func() (interface{}, error) {
		return refreshClient.BulkBatchIDs(0, 10)
	})

	message := "Bulk payment approved!"
	if !approve {
		message = "Bulk payment denied!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"transactionId": transactionID,
		"approved":      approve,
	})
}

// recordDecision stamps the local batch mirror and notifies the decider
// by email. Skipped when no database is connected.
func recordDecision(transactionID string, approve bool, user *session.User) {
	status := "SUCCESS"
	if !approve {
		status = "FAILED"
	}

	deciderName, deciderEmail := "", ""
	if user != nil {
		deciderName = user.FullName
		deciderEmail = user.Email
	}

	if database.Database.Db != nil {
		now := time.Now()
		updates := map[string]interface{}{
			"status":     status,
			"decided_by": deciderEmail,
			"decided_at": &now,
		}
		if err := database.Database.Db.Model(&models.BulkBatch{}).
			Where("transaction_id = ?", transactionID).
			Updates(updates).Error; err != nil {
			log.Println("Failed to record bulk decision:", err)
		}
	}

	if deciderEmail != "" {
		go utils.SendBatchDecisionEmail(deciderEmail, deciderName, transactionID, approve)
	}
}
