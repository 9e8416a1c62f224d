package payoutController

import (
	"paydash/dispatch"
	"paydash/gateway"
	"paydash/middleware"
	"paydash/payoutapi"
	"paydash/utils"

	"github.com/gofiber/fiber/v2"
)

// BeneficiaryTypes lists the supported beneficiary type tags.
func BeneficiaryTypes(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	client := gateway.NewClient(sess)

	data, err := gateway.DispatcherFor(sess).Do(dispatch.GroupBeneficiaryTypes, func() (interface{}, error) {
		return client.BeneficiaryTypes()
	})
	if err != nil {
		return gateway.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Beneficiary types fetched!", data)
}

// PayoutReasons lists the configured payout reasons.
func PayoutReasons(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	client := gateway.NewClient(sess)

	data, err := gateway.DispatcherFor(sess).Do(dispatch.GroupPayoutReasons, func() (interface{}, error) {
		return client.PayoutReasons()
	})
	if err != nil {
		return gateway.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payout reasons fetched!", data)
}

// AddBeneficiary registers a new payee.
func AddBeneficiary(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBeneficiary").(*payoutapi.AddBeneficiaryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// The backend stores the structured address in its serialized form.
	if reqData.BeneficiaryAddress == "" {
		reqData.BeneficiaryAddress = utils.SerializeAddress(reqData.Address)
	}

	sess := middleware.SessionFromCtx(c)
	client := gateway.NewClient(sess)

	data, err := gateway.DispatcherFor(sess).Do(dispatch.GroupAddBeneficiary, func() (interface{}, error) {
		return client.AddBeneficiary(reqData)
	})
	if err != nil {
		return gateway.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Beneficiary added successfully!", data)
}

// BeneficiaryDetails looks a beneficiary up by mobile number.
func BeneficiaryDetails(c *fiber.Ctx) error {
	mobile := c.Query("beneficiaryMobileNumber")
	sess := middleware.SessionFromCtx(c)
	client := gateway.NewClient(sess)

	data, err := gateway.DispatcherFor(sess).Do(dispatch.GroupBeneficiaryDetails, func() (interface{}, error) {
		return client.BeneficiaryDetails(mobile)
	})
	if err != nil {
		return gateway.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Beneficiary details fetched!", data)
}

// UpdateBeneficiary replaces a beneficiary's IFSC code.
func UpdateBeneficiary(c *fiber.Ctx) error {
	beneficiaryID := c.Query("beneficiaryId")
	ifscCode := c.Query("beneficiaryIfscCode")

	sess := middleware.SessionFromCtx(c)
	client := gateway.NewClient(sess)

	data, err := gateway.DispatcherFor(sess).Do(dispatch.GroupUpdateBeneficiary, func() (interface{}, error) {
		env, err := client.UpdateBeneficiary(beneficiaryID, ifscCode)
		if err != nil {
			return nil, err
		}
		var payload interface{}
		if err := env.DecodeData(&payload); err != nil {
			return nil, err
		}
		return payload, nil
	})
	if err != nil {
		return gateway.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "IFSC code updated successfully", data)
}

// BeneficiaryList fetches one page of registered beneficiaries.
func BeneficiaryList(c *fiber.Ctx) error {
	pageNumber := c.Locals("pageNumber").(int)
	pageSize := c.Locals("pageSize").(int)

	sess := middleware.SessionFromCtx(c)
	client := gateway.NewClient(sess)

	data, err := gateway.DispatcherFor(sess).Do(dispatch.GroupBeneficiaryList, func() (interface{}, error) {
		return client.BeneficiaryList(pageNumber, pageSize)
	})
	if err != nil {
		return gateway.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Beneficiary list fetched!", data)
}

// SendMoney initiates a payout. On success the transaction list is
// refreshed; on failure the form state stays with the caller.
func SendMoney(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSendMoney").(*payoutapi.SendMoneyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	sess := middleware.SessionFromCtx(c)
	client := gateway.NewClient(sess)

	data, err := gateway.DispatcherFor(sess).Do(dispatch.GroupSendMoney, func() (interface{}, error) {
		return client.SendMoney(reqData)
	})
	if err != nil {
		return gateway.ErrorResponse(c, err)
	}

	if result, ok := data.(*payoutapi.SendMoneyResult); ok {
		mirrorPayoutOrder(reqData, result)
	}

	// Ask the triggering list view to refresh.
	refreshClient := gateway.NewClient(sess)
	gateway.DispatcherFor(sess).Go(dispatch.GroupAllPayoutTransactions, func() (interface{}, error) {
		return refreshClient.AllPayoutTransactions(0, 10)
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Money sent successfully!", data)
}

// CheckStatus polls the backend for one order's current state.
func CheckStatus(c *fiber.Ctx) error {
	orderID := c.Query("orderId")
	sess := middleware.SessionFromCtx(c)
	client := gateway.NewClient(sess)

	data, err := gateway.DispatcherFor(sess).Do(dispatch.GroupPayoutStatus, func() (interface{}, error) {
		status, statusText, err := client.CheckStatus(orderID)
		if err != nil {
			return nil, err
		}
		refreshPayoutOrder(orderID, status, statusText)
		return fiber.Map{"status": statusText, "data": status}, nil
	})
	if err != nil {
		return gateway.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payout status fetched!", data)
}

// TransactionDetails fetches one page of payouts for a beneficiary.
func TransactionDetails(c *fiber.Ctx) error {
	beneficiaryID := c.Query("beneficiaryId")
	pageNumber := c.Locals("pageNumber").(int)
	pageSize := c.Locals("pageSize").(int)

	sess := middleware.SessionFromCtx(c)
	client := gateway.NewClient(sess)

	data, err := gateway.DispatcherFor(sess).Do(dispatch.GroupTransactionDetails, func() (interface{}, error) {
		return client.TransactionDetails(beneficiaryID, pageNumber, pageSize)
	})
	if err != nil {
		return gateway.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction details fetched!", data)
}

// AllPayoutTransactions fetches one page of all payouts.
func AllPayoutTransactions(c *fiber.Ctx) error {
	pageNumber := c.Locals("pageNumber").(int)
	pageSize := c.Locals("pageSize").(int)

	sess := middleware.SessionFromCtx(c)
	client := gateway.NewClient(sess)

	data, err := gateway.DispatcherFor(sess).Do(dispatch.GroupAllPayoutTransactions, func() (interface{}, error) {
		return client.AllPayoutTransactions(pageNumber, pageSize)
	})
	if err != nil {
		return gateway.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payout transactions fetched!", data)
}

// DashboardState exposes the caller's own lifecycle store snapshot so
// views can render loading and error flags per operation group.
func DashboardState(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard state fetched!",
		gateway.DispatcherFor(sess).Store().Snapshot())
}
