// Package usage defines the measurement kinds nutctl can report and maps
// them onto NUT variable names.
package usage

import "fmt"

// Type is one of the measurement kinds the usage subcommand understands.
type Type int

const (
	// VoltageIn is the mains voltage feeding the UPS.
	VoltageIn Type = iota
	// VoltageOut is the voltage the UPS delivers to its load.
	VoltageOut
	// CurrentOut is the current drawn by the load.
	CurrentOut
	// Power is derived from VoltageOut and CurrentOut; it has no NUT
	// variable of its own.
	Power
)

// String returns the canonical token for t.
func (t Type) String() string {
	switch t {
	case VoltageIn:
		return "voltage_in"
	case VoltageOut:
		return "voltage_out"
	case CurrentOut:
		return "current_out"
	case Power:
		return "power"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Parse resolves a user-supplied token to a Type. Tokens are matched
// literally; no case folding or trimming is performed.
func Parse(token string) (Type, error) {
	switch token {
	case "vin", "volt_in", "voltage_in":
		return VoltageIn, nil
	case "vout", "volt_out", "voltage_out":
		return VoltageOut, nil
	case "cout", "cur_out", "current_out":
		return CurrentOut, nil
	case "pwr", "power":
		return Power, nil
	}
	return 0, fmt.Errorf("invalid usage type %q", token)
}

// ParseTypes resolves every token in order, preserving duplicates. The
// first unrecognized token fails the whole list.
func ParseTypes(tokens []string) ([]Type, error) {
	types := make([]Type, 0, len(tokens))
	for _, token := range tokens {
		t, err := Parse(token)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// VariableName returns the NUT variable backing t. Power is derived and
// has no variable; asking for one is a programming error.
func (t Type) VariableName() string {
	switch t {
	case VoltageIn:
		return "input.voltage"
	case VoltageOut:
		return "output.voltage"
	case CurrentOut:
		return "output.current"
	}
	panic(fmt.Sprintf("usage: no NUT variable for type %v", t))
}
