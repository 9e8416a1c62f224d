package utils

import (
	"testing"

	"paydash/payoutapi"
)

func TestAddressRoundTrip(t *testing.T) {
	in := payoutapi.Address{
		Line:     "12 MG Road",
		Area:     "Shivaji Nagar",
		City:     "Bengaluru",
		District: "Bengaluru Urban",
		State:    "Karnataka",
		Pincode:  "560001",
	}

	out := ParseAddress(SerializeAddress(in))
	if out != in {
		t.Errorf("round trip changed address: %+v", out)
	}
}

func TestParseAddressDegradesToZero(t *testing.T) {
	for _, s := range []string{"", "   ", "not json", `{"pincode":560001}`} {
		if got := ParseAddress(s); got != (payoutapi.Address{}) {
			t.Errorf("ParseAddress(%q) = %+v, want zero", s, got)
		}
	}
}
