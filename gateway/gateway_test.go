package gateway

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"paydash/dispatch"
	"paydash/payoutapi"

	"github.com/gofiber/fiber/v2"
)

func TestDispatcherForSeparatesSessions(t *testing.T) {
	Init(nil)

	sessA := Sessions.Create()
	sessB := Sessions.Create()

	if _, err := DispatcherFor(sessA).Do(dispatch.GroupBeneficiaryList, func() (interface{}, error) {
		return "a-payees", nil
	}); err != nil {
		t.Fatalf("Do: %v", err)
	}

	if state := DispatcherFor(sessB).Store().State(dispatch.GroupBeneficiaryList); state.Data != nil {
		t.Errorf("second session saw first session's data: %+v", state)
	}
	if state := DispatcherFor(sessA).Store().State(dispatch.GroupBeneficiaryList); state.Data != "a-payees" {
		t.Errorf("first session lost its data: %+v", state)
	}
}

func TestDropSessionDiscardsStore(t *testing.T) {
	Init(nil)

	sess := Sessions.Create()
	if _, err := DispatcherFor(sess).Do(dispatch.GroupSendMoney, func() (interface{}, error) {
		return "done", nil
	}); err != nil {
		t.Fatalf("Do: %v", err)
	}

	DropSession(sess.ID())
	if state := Stores.For(sess.ID()).State(dispatch.GroupSendMoney); state.Data != nil {
		t.Errorf("store survived DropSession: %+v", state)
	}
}

func TestErrorResponseStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"auth expired", &payoutapi.APIError{Kind: payoutapi.KindAuthExpired, StatusCode: 401, Message: "Please log in again"}, http.StatusUnauthorized},
		{"service unavailable", &payoutapi.APIError{Kind: payoutapi.KindServiceUnavailable, StatusCode: 503, Message: "Service unavailable"}, http.StatusServiceUnavailable},
		{"internal", &payoutapi.APIError{Kind: payoutapi.KindInternalServerError, StatusCode: 500, Message: "Something Went Wrong"}, http.StatusBadGateway},
		{"application", &payoutapi.APIError{Kind: payoutapi.KindApplicationError, StatusCode: 200, Message: "Duplicate beneficiary"}, http.StatusBadRequest},
		{"unknown keeps upstream 404", &payoutapi.APIError{Kind: payoutapi.KindUnknown, StatusCode: 404, Message: "no such endpoint"}, http.StatusNotFound},
		{"unknown keeps upstream 429", &payoutapi.APIError{Kind: payoutapi.KindUnknown, StatusCode: 429, Message: "slow down"}, http.StatusTooManyRequests},
		{"unknown without upstream status", &payoutapi.APIError{Kind: payoutapi.KindUnknown, Message: "Please try again after sometime"}, http.StatusBadGateway},
		{"plain error", errors.New("boom"), http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/fail", func(c *fiber.Ctx) error {
				return ErrorResponse(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tc.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}
