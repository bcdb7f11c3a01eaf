package usage

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Parse
// ---------------------------------------------------------------------------

func Test_Parse_AcceptedTokens(t *testing.T) {
	tests := []struct {
		token string
		want  Type
	}{
		{"vin", VoltageIn},
		{"volt_in", VoltageIn},
		{"voltage_in", VoltageIn},
		{"vout", VoltageOut},
		{"volt_out", VoltageOut},
		{"voltage_out", VoltageOut},
		{"cout", CurrentOut},
		{"cur_out", CurrentOut},
		{"current_out", CurrentOut},
		{"pwr", Power},
		{"power", Power},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Parse(tt.token)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func Test_Parse_RejectedTokens(t *testing.T) {
	tokens := []string{
		"",
		"volt",
		"voltage",
		"current_in",
		"watts",
		// Matching is literal: no case folding, no trimming.
		"VIN",
		"Power",
		" vin",
		"vin ",
		"voltage_in\n",
	}

	for _, token := range tokens {
		t.Run("token="+token, func(t *testing.T) {
			if _, err := Parse(token); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", token)
			}
		})
	}
}

func Test_Parse_ErrorNamesToken(t *testing.T) {
	_, err := Parse("wattage")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "wattage") {
		t.Errorf("error = %q, want it to name the token", err.Error())
	}
	if !strings.Contains(err.Error(), "invalid usage type") {
		t.Errorf("error = %q, want it to name the failure category", err.Error())
	}
}

// ---------------------------------------------------------------------------
// ParseTypes
// ---------------------------------------------------------------------------

func Test_ParseTypes_PreservesOrderAndDuplicates(t *testing.T) {
	got, err := ParseTypes([]string{"power", "vin", "power", "cout"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Type{Power, VoltageIn, Power, CurrentOut}
	if len(got) != len(want) {
		t.Fatalf("got %d types, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("types[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func Test_ParseTypes_EmptyInput(t *testing.T) {
	got, err := ParseTypes(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d types, want 0", len(got))
	}
}

func Test_ParseTypes_AnyBadTokenFailsWholeList(t *testing.T) {
	_, err := ParseTypes([]string{"vin", "bogus", "vout"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error = %q, want it to name the bad token", err.Error())
	}
}

// ---------------------------------------------------------------------------
// VariableName
// ---------------------------------------------------------------------------

func Test_VariableName_Mapping(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{VoltageIn, "input.voltage"},
		{VoltageOut, "output.voltage"},
		{CurrentOut, "output.current"},
	}

	seen := make(map[string]Type, len(tests))
	for _, tt := range tests {
		got := tt.typ.VariableName()
		if got != tt.want {
			t.Errorf("%v.VariableName() = %q, want %q", tt.typ, got, tt.want)
		}
		if got == "" {
			t.Errorf("%v.VariableName() is empty", tt.typ)
		}
		// The mapping must be injective.
		if prev, dup := seen[got]; dup {
			t.Errorf("variable %q mapped by both %v and %v", got, prev, tt.typ)
		}
		seen[got] = tt.typ
	}
}

func Test_VariableName_PowerPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Power.VariableName() did not panic")
		}
	}()
	_ = Power.VariableName()
}

// ---------------------------------------------------------------------------
// String
// ---------------------------------------------------------------------------

func Test_String_CanonicalTokens(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{VoltageIn, "voltage_in"},
		{VoltageOut, "voltage_out"},
		{CurrentOut, "current_out"},
		{Power, "power"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.typ), got, tt.want)
		}
	}
}

func Test_String_RoundTripsThroughParse(t *testing.T) {
	for _, typ := range []Type{VoltageIn, VoltageOut, CurrentOut, Power} {
		got, err := Parse(typ.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", typ.String(), err)
		}
		if got != typ {
			t.Errorf("Parse(%q) = %v, want %v", typ.String(), got, typ)
		}
	}
}
