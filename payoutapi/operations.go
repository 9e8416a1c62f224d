package payoutapi

import (
	"io"
	"strconv"
)

// Typed wrappers for each backend operation the dashboard consumes.
// Lookup endpoints with no stable documented shape stay loosely typed.

// Login authenticates against the backend. It does not touch the
// session; the caller decides what to persist.
func (c *Client) Login(email, password string) (*LoginResult, error) {
	env, err := c.Post("/auth/log-in", map[string]string{
		"email":    email,
		"password": password,
	}, nil, nil)
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if err := env.DecodeData(&result); err != nil {
		return nil, &APIError{Kind: KindUnknown, Message: genericRetryMessage}
	}
	return &result, nil
}

// UserDetails fetches the fresh account snapshot for the logged-in user.
func (c *Client) UserDetails() (interface{}, error) {
	env, err := c.Get("/user/details", nil, nil)
	if err != nil {
		return nil, err
	}
	var details interface{}
	if err := env.DecodeData(&details); err != nil {
		return nil, err
	}
	return details, nil
}

// BeneficiaryTypes lists the supported beneficiary type tags.
func (c *Client) BeneficiaryTypes() (interface{}, error) {
	env, err := c.Post("/payout/beneficiary-type", map[string]string{}, nil, nil)
	if err != nil {
		return nil, err
	}
	var types interface{}
	if err := env.DecodeData(&types); err != nil {
		return nil, err
	}
	return types, nil
}

// PayoutReasons lists the configured payout reasons.
func (c *Client) PayoutReasons() (interface{}, error) {
	env, err := c.Post("/payout/pay-reason", map[string]string{}, nil, nil)
	if err != nil {
		return nil, err
	}
	var reasons interface{}
	if err := env.DecodeData(&reasons); err != nil {
		return nil, err
	}
	return reasons, nil
}

// AddBeneficiary registers a new payee.
func (c *Client) AddBeneficiary(req *AddBeneficiaryRequest) (*Beneficiary, error) {
	env, err := c.Post("/payout/add/beneficiary", req, nil, nil)
	if err != nil {
		return nil, err
	}
	var created Beneficiary
	if err := env.DecodeData(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

// BeneficiaryDetails looks a beneficiary up by mobile number.
func (c *Client) BeneficiaryDetails(mobileNumber string) (*Beneficiary, error) {
	env, err := c.Get("/payout/beneficiary-details", map[string]string{
		"beneficiaryMobileNumber": mobileNumber,
	}, nil)
	if err != nil {
		return nil, err
	}
	var bene Beneficiary
	if err := env.DecodeData(&bene); err != nil {
		return nil, err
	}
	return &bene, nil
}

// UpdateBeneficiary replaces the IFSC code, the only supported mutation.
func (c *Client) UpdateBeneficiary(beneficiaryID, ifscCode string) (*Envelope, error) {
	return c.Post("/payout/update/beneficiary", nil, map[string]string{
		"beneficiaryIfscCode": ifscCode,
		"beneficiaryId":       beneficiaryID,
	}, nil)
}

// BeneficiaryList fetches one page of registered beneficiaries.
func (c *Client) BeneficiaryList(pageNumber, pageSize int) (*BeneficiaryPage, error) {
	env, err := c.Get("/payout/beneficiary-list", pageParams(pageNumber, pageSize), nil)
	if err != nil {
		return nil, err
	}
	page := &BeneficiaryPage{PageNumber: pageNumber, PageSize: pageSize}
	if err := env.DecodeData(page); err != nil {
		return nil, err
	}
	return page, nil
}

// SendMoney initiates a payout to a beneficiary.
func (c *Client) SendMoney(req *SendMoneyRequest) (*SendMoneyResult, error) {
	env, err := c.Post("/payout/send-money", req, nil, nil)
	if err != nil {
		return nil, err
	}
	var result SendMoneyResult
	if err := env.DecodeData(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CheckStatus polls the backend for the current state of an order.
func (c *Client) CheckStatus(orderID string) (*PayoutStatus, string, error) {
	env, err := c.Get("/payout/check-status", map[string]string{"orderId": orderID}, nil)
	if err != nil {
		return nil, "", err
	}
	var status PayoutStatus
	if err := env.DecodeData(&status); err != nil {
		return nil, "", err
	}
	return &status, env.StatusText(), nil
}

// TransactionDetails fetches one page of payouts for a beneficiary.
func (c *Client) TransactionDetails(beneficiaryID string, pageNumber, pageSize int) (*TransactionPage, error) {
	params := pageParams(pageNumber, pageSize)
	params["beneficiaryId"] = beneficiaryID
	env, err := c.Get("/payout/transaction-details", params, nil)
	if err != nil {
		return nil, err
	}
	page := &TransactionPage{PageNumber: pageNumber, PageSize: pageSize}
	if err := env.DecodeData(page); err != nil {
		return nil, err
	}
	return page, nil
}

// AllPayoutTransactions fetches one page of all payouts.
func (c *Client) AllPayoutTransactions(pageNumber, pageSize int) (*TransactionHistory, error) {
	env, err := c.Get("/payout/all-payout-transaction", pageParams(pageNumber, pageSize), nil)
	if err != nil {
		return nil, err
	}
	var history TransactionHistory
	if err := env.DecodeData(&history); err != nil {
		return nil, err
	}
	return &history, nil
}

// BulkUploadBeneficiaries submits the validated spreadsheet plus the
// accompanying beneficiary-profile form as a multipart upload.
func (c *Client) BulkUploadBeneficiaries(fileName string, file io.Reader, profile map[string]string) (*BulkUploadResult, error) {
	env, err := c.PostMultipart("/payout/beneficiaries/bulk-upload", "file", fileName, file, profile, nil)
	if err != nil {
		return nil, err
	}
	var result BulkUploadResult
	if err := env.DecodeData(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// BulkBatchIDs lists uploaded bulk batches. Note the backend spells this
// endpoint's page parameter pageNo, unlike every other listing.
func (c *Client) BulkBatchIDs(pageNumber, pageSize int) (*BulkBatchPage, error) {
	env, err := c.Get("/payout/bulk-upload-transaction-ids", map[string]string{
		"pageNo":   strconv.Itoa(pageNumber),
		"pageSize": strconv.Itoa(pageSize),
	}, nil)
	if err != nil {
		return nil, err
	}
	var page BulkBatchPage
	if err := env.DecodeData(&page); err != nil {
		return nil, err
	}
	return &page, nil
}

// BulkBatchDetails fetches the per-row breakdown of one batch.
func (c *Client) BulkBatchDetails(transactionID string) ([]BulkBatchRow, error) {
	env, err := c.Get("/payout/bulk-upload-amount-details-by-transaction-id", map[string]string{
		"transactionId": transactionID,
	}, nil)
	if err != nil {
		return nil, err
	}
	var rows []BulkBatchRow
	if err := env.DecodeData(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// BulkDecision approves (status=true) or denies (status=false) a PENDING
// batch. Re-invoking after the batch left PENDING is a backend no-op.
func (c *Client) BulkDecision(transactionID string, approve bool) (*Envelope, error) {
	return c.Post("/payout/bulk-upload-payment-accept-or-denied", nil, map[string]string{
		"transactionId": transactionID,
		"status":        strconv.FormatBool(approve),
	}, nil)
}

func pageParams(pageNumber, pageSize int) map[string]string {
	return map[string]string{
		"pageNumber": strconv.Itoa(pageNumber),
		"pageSize":   strconv.Itoa(pageSize),
	}
}
