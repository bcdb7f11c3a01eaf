package usage

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/powerctl/nutctl/internal/nut"
)

// Reporter prints one line per requested usage type for a single UPS.
type Reporter struct {
	Session nut.Session
	UPS     string
	Out     io.Writer
}

// Report processes types in the order given. Power is derived: it fetches
// the output voltage and current, multiplies them, and prints the product
// to two decimal places. Every other kind prints the fetched variable
// text verbatim. The first failure aborts the remainder; lines already
// written stand.
func (r *Reporter) Report(ctx context.Context, types []Type) error {
	for _, t := range types {
		if t == Power {
			voltage, err := r.fetchNumeric(ctx, VoltageOut)
			if err != nil {
				return err
			}
			current, err := r.fetchNumeric(ctx, CurrentOut)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(r.Out, "power: %.2f W\n", voltage*current); err != nil {
				return err
			}
			continue
		}

		value, err := r.Session.GetVariable(ctx, r.UPS, t.VariableName())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.Out, value); err != nil {
			return err
		}
	}
	return nil
}

// fetchNumeric fetches the variable backing t and parses its value half
// as a float64. Sessions return "<name>: <value>"; a missing separator
// and an unparseable value both report the variable as not found.
func (r *Reporter) fetchNumeric(ctx context.Context, t Type) (float64, error) {
	name := t.VariableName()
	text, err := r.Session.GetVariable(ctx, r.UPS, name)
	if err != nil {
		return 0, err
	}
	_, value, found := strings.Cut(text, ": ")
	if !found {
		return 0, fmt.Errorf("variable %s not found or not numeric", name)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("variable %s not found or not numeric", name)
	}
	return v, nil
}
