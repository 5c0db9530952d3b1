package flags

import (
	"flag"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli"
)

// Decimal is a wrapper for an arbitrary precision amount with flag.Value
// methods.
type Decimal struct {
	Value decimal.Decimal
}

// DecimalFlag is a flag with type decimal.Decimal.
type DecimalFlag struct {
	Name     string
	Usage    string
	Value    Decimal
	Required bool
}

var (
	_ flag.Value        = (*Decimal)(nil)
	_ cli.Flag         = DecimalFlag{}
	_ cli.RequiredFlag = DecimalFlag{}
)

// String implements the fmt.Stringer interface.
func (d Decimal) String() string {
	return d.Value.String()
}

// Set implements the flag.Value interface. Negative amounts are rejected.
func (d *Decimal) Set(s string) error {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if v.IsNegative() {
		return cli.NewExitError("negative amount: "+s, 1)
	}
	d.Value = v
	return nil
}

// String returns a readable representation of this value
// (for usage defaults).
func (f DecimalFlag) String() string {
	var names []string
	eachName(f.Name, func(name string) {
		names = append(names, getNameHelp(name))
	})

	return strings.Join(names, ", ") + "\t" + f.Usage
}

// IsRequired returns whether the flag is required.
func (f DecimalFlag) IsRequired() bool {
	return f.Required
}

// GetName returns the name of the flag.
func (f DecimalFlag) GetName() string {
	return f.Name
}

// Apply populates the flag given the flag set and environment.
// Ignores errors.
func (f DecimalFlag) Apply(set *flag.FlagSet) {
	eachName(f.Name, func(name string) {
		set.Var(&f.Value, name, f.Usage)
	})
}

// DecimalFromContext returns a parsed amount provided with the flag name,
// zero if it's not set.
func DecimalFromContext(ctx *cli.Context, name string) decimal.Decimal {
	d, ok := ctx.Generic(name).(*Decimal)
	if !ok || d == nil {
		return decimal.Zero
	}
	return d.Value
}
