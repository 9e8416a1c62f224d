package payoutapi

// Address is the structured beneficiary address. The backend stores it
// serialized into the single beneficiaryAddress string.
type Address struct {
	Line     string `json:"line"`
	Area     string `json:"area"`
	City     string `json:"city"`
	District string `json:"district"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// Beneficiary is a registered payee as the backend returns it.
type Beneficiary struct {
	BeneficiaryID                string  `json:"beneficiaryId"`
	BeneType                     string  `json:"beneType"` // customer/vendor/employee
	BeneficiaryBankAccountNumber string  `json:"beneficiaryBankAccountNumber"`
	BeneficiaryBankIfscCode      string  `json:"beneficiaryBankIfscCode"`
	BeneficiaryName              string  `json:"beneficiaryName"`
	BeneficiaryBankName          string  `json:"beneficiaryBankName"`
	BeneficiaryEmail             string  `json:"beneficiaryEmail"`
	BeneficiaryMobileNumber      string  `json:"beneficiaryMobileNumber"`
	BeneficiaryPan               string  `json:"beneficiaryPan"`
	BeneficiaryAadhaar           string  `json:"beneficiaryAadhaar"`
	BeneficiaryAddress           string  `json:"beneficiaryAddress"`
	Latitude                     float64 `json:"latitude"`
	Longitude                    float64 `json:"longitude"`
	Status                       bool    `json:"status"`
	CreatedAt                    string  `json:"createdAt"`
	UpdatedAt                    string  `json:"updatedAt"`
}

// AddBeneficiaryRequest is the add-beneficiary payload.
type AddBeneficiaryRequest struct {
	BeneficiaryName          string  `json:"beneficiaryName"`
	BeneficiaryMobileNumber  string  `json:"beneficiaryMobileNumber"`
	BeneficiaryEmail         string  `json:"beneficiaryEmail"`
	BeneficiaryPanNumber     string  `json:"beneficiaryPanNumber"`
	BeneficiaryAadhaarNumber string  `json:"beneficiaryAadhaarNumber"`
	BeneficiaryAddress       string  `json:"beneficiaryAddress"`
	BeneficiaryBankName      string  `json:"beneficiaryBankName"`
	BeneficiaryAccountNumber string  `json:"beneficiaryAccountNumber"`
	BeneficiaryIfscCode      string  `json:"beneficiaryIfscCode"`
	BeneType                 string  `json:"beneType"`
	Latitude                 float64 `json:"latitude"`
	Longitude                float64 `json:"longitude"`
	Address                  Address `json:"address"`
}

// SendMoneyRequest is the send-money payload.
type SendMoneyRequest struct {
	BeneficiaryID           string  `json:"beneficiaryId"`
	BeneficiaryName         string  `json:"beneficiaryName"`
	BeneficiaryMobileNumber string  `json:"beneficiaryMobileNumber"`
	Comment                 string  `json:"comment"`
	Remarks                 string  `json:"remarks"`
	Amount                  float64 `json:"amount"`
	TransferType            string  `json:"transferType"` // IMPS/NEFT/RTGS
}

// Transaction is one payout as listed by transaction-details and
// all-payout-transaction.
type Transaction struct {
	Status         string `json:"status"`
	BeneficiaryID  string `json:"beneficiaryId"`
	OrderID        string `json:"orderId"`
	CyrusOrderID   string `json:"cyrusOrderId"`
	CyrusID        string `json:"cyrusId"`
	RrnNumber      string `json:"rrnNumber"`
	OpeningBalance string `json:"openingBalance"`
	LockedAmount   string `json:"lockedAmount"`
	ChargedAmount  string `json:"chargedAmount"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// BeneficiaryPage is the paginated beneficiary listing.
type BeneficiaryPage struct {
	Content       []Beneficiary `json:"content"`
	TotalElements int64         `json:"totalElements"`
	TotalPages    int           `json:"totalPages"`
	PageNumber    int           `json:"pageNumber"`
	PageSize      int           `json:"pageSize"`
}

// TransactionPage is the paginated per-beneficiary transaction listing.
type TransactionPage struct {
	Content       []Transaction `json:"content"`
	TotalElements int64         `json:"totalElements"`
	TotalPages    int           `json:"totalPages"`
	PageNumber    int           `json:"pageNumber"`
	PageSize      int           `json:"pageSize"`
}

// TransactionHistory is the canonical all-payout-transaction listing.
// The older {content, first, last, empty, ...} shape is superseded.
type TransactionHistory struct {
	Transactions  []Transaction `json:"transactions"`
	TotalElements int64         `json:"totalElements"`
	TotalPages    int           `json:"totalPages"`
	CurrentPage   int           `json:"currentPage"`
}

// PayoutStatus is the check-status result.
type PayoutStatus struct {
	OrderID        string `json:"orderId"`
	CyrusOrderID   string `json:"cyrusOrderId"`
	CyrusID        string `json:"cyrus_id"`
	OpeningBalance string `json:"opening_bal"`
	LockedAmount   string `json:"locked_amt"`
	ChargedAmount  string `json:"charged_amt"`
	Rrn            string `json:"rrn"`
}

// SendMoneyResult is what the backend returns after accepting a payout.
type SendMoneyResult struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// BulkRowError reports one failed row from a bulk upload.
type BulkRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// BulkUploadResult is the aggregate outcome of a bulk beneficiary upload.
type BulkUploadResult struct {
	TransactionID string         `json:"transactionId"`
	Successful    int            `json:"successful"`
	Failed        int            `json:"failed"`
	Errors        []BulkRowError `json:"errors"`
}

// BulkBatchRef is one entry of the batch id listing.
type BulkBatchRef struct {
	MemberID      string `json:"memberId"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"` // PENDING/SUCCESS/FAILED
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// BulkBatchPage is the paginated batch id listing.
type BulkBatchPage struct {
	TransactionHistory []BulkBatchRef `json:"transactionHistory"`
	TotalElements      int64          `json:"totalElements"`
	TotalPages         int            `json:"totalPages"`
	CurrentPage        int            `json:"currentPage"`
}

// BulkBatchRow is one payment row inside a bulk batch.
type BulkBatchRow struct {
	MemberID                string  `json:"memberId"`
	TransactionID           string  `json:"transactionId"`
	BeneficiaryID           string  `json:"beneficiaryId"`
	TransactionType         string  `json:"transactionType"`
	BeneficiaryCyrusID      string  `json:"beneficiaryCyrusId"`
	BeneficiaryName         string  `json:"beneficiaryName"`
	BeneficiaryMobileNumber string  `json:"beneficiaryMobileNumber"`
	Status                  string  `json:"status"`
	Comment                 string  `json:"comment"`
	Remarks                 string  `json:"remarks"`
	Amount                  float64 `json:"amount"`
	CreatedAt               string  `json:"createdAt"`
	UpdatedAt               string  `json:"updatedAt"`
}

// LoginResult carries the tokens and user snapshot issued at login.
type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         struct {
		FullName     string `json:"fullName"`
		Email        string `json:"email"`
		MobileNumber string `json:"mobileNumber"`
		UserType     string `json:"userType"`
		Status       bool   `json:"status"`
		CreatedAt    string `json:"createdAt"`
		UpdatedAt    string `json:"updatedAt"`
	} `json:"user"`
}
