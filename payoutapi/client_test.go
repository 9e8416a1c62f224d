package payoutapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"paydash/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.New("test", nil)
	if err := sess.Set("bearer-token", "refresh-token", nil); err != nil {
		t.Fatalf("Set: %v", err)
	}
	return NewClient(srv.URL, "v1", 5, sess), sess
}

func TestTokensAttachedPerRequest(t *testing.T) {
	var gotAuth, gotRefresh, gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRefresh = r.Header.Get("refreshToken")
		gotPath = r.URL.Path
		w.Write([]byte(`{"response":true,"message":"ok","data":{"content":[]},"status":"OK"}`))
	})

	if _, err := client.BeneficiaryList(0, 10); err != nil {
		t.Fatalf("BeneficiaryList: %v", err)
	}
	if gotAuth != "Bearer bearer-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotRefresh != "refresh-token" {
		t.Errorf("refreshToken = %q", gotRefresh)
	}
	if gotPath != "/api/v1/payout/beneficiary-list" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestHTTP401ClearsSessionAndFiresHook(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"response":false,"message":"unauthorized"}`))
	})

	hookFired := false
	client.OnAuthExpired(func() { hookFired = true })

	_, err := client.BeneficiaryList(0, 10)
	if KindOf(err) != KindAuthExpired {
		t.Fatalf("kind = %v, want %v", KindOf(err), KindAuthExpired)
	}
	if err.Error() != "Please log in again" {
		t.Errorf("message = %q", err.Error())
	}
	if sess.Authenticated() {
		t.Error("session still authenticated after 401")
	}
	if !hookFired {
		t.Error("forced logout hook did not fire")
	}
}

func TestEmbedded401InEnvelope(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// HTTP 200 but the envelope itself reports 401.
		w.Write([]byte(`{"response":false,"message":"token expired","status":401}`))
	})

	_, err := client.BeneficiaryList(0, 10)
	if KindOf(err) != KindAuthExpired {
		t.Fatalf("kind = %v, want %v", KindOf(err), KindAuthExpired)
	}
	if sess.Authenticated() {
		t.Error("session still authenticated after embedded 401")
	}
}

func TestServiceUnavailable(t *testing.T) {
	for _, status := range []int{502, 503, 504, 505} {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.BeneficiaryList(0, 10)
		if KindOf(err) != KindServiceUnavailable {
			t.Errorf("status %d: kind = %v, want %v", status, KindOf(err), KindServiceUnavailable)
		}
		if err.Error() != "Service unavailable" {
			t.Errorf("status %d: message = %q", status, err.Error())
		}
	}
}

func TestInternalServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"response":false,"message":"stack trace here"}`))
	})

	_, err := client.BeneficiaryList(0, 10)
	if KindOf(err) != KindInternalServerError {
		t.Fatalf("kind = %v, want %v", KindOf(err), KindInternalServerError)
	}
	if err.Error() != "Something Went Wrong" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestApplicationError(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":false,"message":"Duplicate beneficiary","data":null,"status":"Bad Request"}`))
	})

	_, err := client.SendMoney(&SendMoneyRequest{BeneficiaryID: "b1", Amount: 100, TransferType: "IMPS"})
	if KindOf(err) != KindApplicationError {
		t.Fatalf("kind = %v, want %v", KindOf(err), KindApplicationError)
	}
	if err.Error() != "Duplicate beneficiary" {
		t.Errorf("message = %q", err.Error())
	}
	if !sess.Authenticated() {
		t.Error("application error must not clear the session")
	}
}

func TestTransportFailure(t *testing.T) {
	sess := session.New("test", nil)
	client := NewClient("http://127.0.0.1:1", "v1", 1, sess)

	_, err := client.BeneficiaryList(0, 10)
	if KindOf(err) != KindUnknown {
		t.Fatalf("kind = %v, want %v", KindOf(err), KindUnknown)
	}
	if err.Error() != "Please try again after sometime" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestNonEnvelopeBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("upstream proxy rejected the request"))
	})

	_, err := client.BeneficiaryList(0, 10)
	if KindOf(err) != KindUnknown {
		t.Fatalf("kind = %v, want %v", KindOf(err), KindUnknown)
	}
	if err.Error() != "upstream proxy rejected the request" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestExtractMessagePriority(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "detail message wins over every other location",
			body: `{"message":"top","data":{"message":"inner","details":[{"message":"field is invalid"}]}}`,
			want: "field is invalid",
		},
		{
			name: "data message wins over top message",
			body: `{"message":"top","data":{"message":"inner"}}`,
			want: "inner",
		},
		{
			name: "top message",
			body: `{"message":"top"}`,
			want: "top",
		},
		{
			name: "json string body",
			body: `"plain failure"`,
			want: "plain failure",
		},
		{
			name: "bare text body",
			body: `gateway timeout`,
			want: "gateway timeout",
		},
		{
			name: "nothing usable falls back to the generic message",
			body: `{"data":{"details":[]}}`,
			want: "Please try again after sometime",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractMessage([]byte(tc.body)); got != tc.want {
				t.Errorf("extractMessage = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEnvelopeStatusCode(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{`401`, 401},
		{`"401"`, 401},
		{`"OK"`, 0},
		{``, 0},
	}
	for _, tc := range cases {
		env := &Envelope{Status: []byte(tc.raw)}
		if got := env.StatusCode(); got != tc.want {
			t.Errorf("StatusCode(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestCheckStatusDecodesLegacyKeys(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":true,"message":"ok","status":"SUCCESS",
			"data":{"orderId":"ord-1","opening_bal":"1000.00","locked_amt":"0.00","charged_amt":"5.00","rrn":"54321","cyrus_id":"cy-9"}}`))
	})

	status, statusText, err := client.CheckStatus("ord-1")
	if err != nil {
		t.Fatalf("CheckStatus: %v", err)
	}
	if statusText != "SUCCESS" {
		t.Errorf("statusText = %q", statusText)
	}
	if status.OpeningBalance != "1000.00" || status.Rrn != "54321" || status.CyrusID != "cy-9" {
		t.Errorf("decoded status = %+v", status)
	}
}
