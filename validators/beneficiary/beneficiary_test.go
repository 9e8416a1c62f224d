package beneficiaryValidator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newAddApp(t *testing.T) (*fiber.App, *bool) {
	t.Helper()
	reached := false
	app := fiber.New()
	app.Post("/add", AddBeneficiary(), func(c *fiber.Ctx) error {
		reached = true
		return c.SendStatus(fiber.StatusOK)
	})
	return app, &reached
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeErrors(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	var envelope struct {
		Data map[string]string `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

const validBeneficiary = `{
	"beneficiaryName": "Sai Kumar",
	"beneficiaryMobileNumber": "9876543210",
	"beneficiaryEmail": "sai@example.com",
	"beneficiaryPanNumber": "ABCDE1234F",
	"beneficiaryAadhaarNumber": "123456789012",
	"beneficiaryAccountNumber": "110052871682",
	"beneficiaryIfscCode": "CNRB0013015",
	"beneType": "vendor"
}`

func TestAddBeneficiaryValid(t *testing.T) {
	app, reached := newAddApp(t)

	resp := postJSON(t, app, "/add", validBeneficiary)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !*reached {
		t.Error("handler not reached for a valid payload")
	}
}

func TestAddBeneficiaryShortAadhaar(t *testing.T) {
	app, reached := newAddApp(t)

	body := strings.Replace(validBeneficiary, "123456789012", "12345", 1)
	resp := postJSON(t, app, "/add", body)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if *reached {
		t.Error("handler reached despite invalid Aadhaar")
	}
	if msg := decodeErrors(t, resp)["beneficiaryAadhaarNumber"]; msg != "Aadhaar number must be 12 digits" {
		t.Errorf("aadhaar error = %q", msg)
	}
}

func TestAddBeneficiaryBadIFSCAndPAN(t *testing.T) {
	app, _ := newAddApp(t)

	body := strings.Replace(validBeneficiary, "CNRB0013015", "CNRB13015", 1)
	body = strings.Replace(body, "ABCDE1234F", "ABC1234F", 1)
	resp := postJSON(t, app, "/add", body)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	errs := decodeErrors(t, resp)
	if errs["beneficiaryIfscCode"] != "Invalid IFSC code format" {
		t.Errorf("ifsc error = %q", errs["beneficiaryIfscCode"])
	}
	if !strings.Contains(errs["beneficiaryPanNumber"], "Invalid PAN format") {
		t.Errorf("pan error = %q", errs["beneficiaryPanNumber"])
	}
}

func TestFormatHelpers(t *testing.T) {
	cases := []struct {
		fn    func(string) bool
		value string
		want  bool
	}{
		{isValidIFSC, "CNRB0013015", true},
		{isValidIFSC, "cnrb0013015", false},
		{isValidIFSC, "CNRB1013015", false},
		{isValidPAN, "ABCDE1234F", true},
		{isValidPAN, "ABCDE12345", false},
		{isValidMobile, "9876543210", true},
		{isValidMobile, "98765", false},
		{isValidAadhaar, "123456789012", true},
		{isValidAadhaar, "1234567890123", false},
		{isValidEmail, "a@b.co", true},
		{isValidEmail, "a@b", false},
	}
	for _, tc := range cases {
		if got := tc.fn(tc.value); got != tc.want {
			t.Errorf("helper(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestUpdateBeneficiaryValidator(t *testing.T) {
	app := fiber.New()
	app.Post("/update", UpdateBeneficiary(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost,
		"/update?beneficiaryId=b1&beneficiaryIfscCode=CNRB0013015", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("valid update status = %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodPost,
		"/update?beneficiaryIfscCode=bogus", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("invalid update status = %d", resp.StatusCode)
	}
}
