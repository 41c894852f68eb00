package warehouse

import (
	"strings"
	"testing"
)

func TestOrder_String_IncludesAllFields(t *testing.T) {
	o := Order{ID: 7, Kind: "sneakers", Quantity: 42}
	s := o.String()
	for _, want := range []string{"7", "sneakers", "42"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
