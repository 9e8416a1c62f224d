package payoutValidator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"paydash/config"
	"paydash/payoutapi"

	"github.com/gofiber/fiber/v2"
)

func newSendMoneyApp(t *testing.T) (*fiber.App, *bool) {
	t.Helper()
	config.AppConfig = &config.Config{IMPSMaxAmount: 500000, RTGSMinAmount: 200000}

	reached := false
	app := fiber.New()
	app.Post("/send", SendMoney(), func(c *fiber.Ctx) error {
		reached = true
		if _, ok := c.Locals("validatedSendMoney").(*payoutapi.SendMoneyRequest); !ok {
			t.Error("validated payload missing from locals")
		}
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

func TestSendMoneyValidPayload(t *testing.T) {
	app, reached := newSendMoneyApp(t)

	resp := postJSON(t, app, "/send",
		`{"beneficiaryId":"b1","amount":1000,"comment":"rent","transferType":"NEFT"}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !*reached {
		t.Error("handler not reached for a valid payload")
	}
}

func TestSendMoneyIMPSCeiling(t *testing.T) {
	app, reached := newSendMoneyApp(t)

	resp := postJSON(t, app, "/send",
		`{"beneficiaryId":"b1","amount":600000,"comment":"rent","transferType":"IMPS"}`)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if *reached {
		t.Error("handler reached despite IMPS ceiling violation")
	}
	if msg := decodeErrors(t, resp)["amount"]; !strings.Contains(msg, "IMPS") {
		t.Errorf("amount error = %q", msg)
	}
}

func TestSendMoneyRTGSFloor(t *testing.T) {
	app, _ := newSendMoneyApp(t)

	resp := postJSON(t, app, "/send",
		`{"beneficiaryId":"b1","amount":1000,"comment":"rent","transferType":"RTGS"}`)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if msg := decodeErrors(t, resp)["amount"]; !strings.Contains(msg, "RTGS") {
		t.Errorf("amount error = %q", msg)
	}
}

func TestSendMoneyCommentRules(t *testing.T) {
	app, _ := newSendMoneyApp(t)

	resp := postJSON(t, app, "/send",
		`{"beneficiaryId":"b1","amount":1000,"comment":"","transferType":"NEFT"}`)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if msg := decodeErrors(t, resp)["comment"]; msg != "Comment is required" {
		t.Errorf("comment error = %q", msg)
	}

	long := strings.Repeat("x", 101)
	resp = postJSON(t, app, "/send",
		`{"beneficiaryId":"b1","amount":1000,"comment":"`+long+`","transferType":"NEFT"}`)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if msg := decodeErrors(t, resp)["comment"]; msg != "Comment must be less than 100 characters" {
		t.Errorf("comment error = %q", msg)
	}
}

func TestSendMoneyUnknownMode(t *testing.T) {
	app, _ := newSendMoneyApp(t)

	resp := postJSON(t, app, "/send",
		`{"beneficiaryId":"b1","amount":1000,"comment":"rent","transferType":"UPI"}`)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if msg := decodeErrors(t, resp)["transferType"]; msg != "Please select a payment mode" {
		t.Errorf("transferType error = %q", msg)
	}
}

func TestPaginationDefaultsAndBounds(t *testing.T) {
	app := fiber.New()
	app.Get("/list", Pagination(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"pageNumber": c.Locals("pageNumber"),
			"pageSize":   c.Locals("pageSize"),
		})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/list", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	var got struct {
		PageNumber int `json:"pageNumber"`
		PageSize   int `json:"pageSize"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.PageNumber != 0 || got.PageSize != 10 {
		t.Errorf("defaults = %+v", got)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/list?pageNumber=-1", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("negative page status = %d", resp.StatusCode)
	}
}
