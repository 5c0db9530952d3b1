package flags

import (
	"strings"

	"github.com/urfave/cli"
)

func eachName(longName string, fn func(string)) {
	parts := strings.Split(longName, ",")
	for _, name := range parts {
		name = strings.Trim(name, " ")
		fn(name)
	}
}

// MarkRequired returns a copy of flagSet with flags of the specified names
// marked as required. Flags are matched by their full name ("address, a").
func MarkRequired(flagSet []cli.Flag, names ...string) []cli.Flag {
	updatedFlagSet := make([]cli.Flag, 0, len(flagSet))
	for _, flag := range flagSet {
		for _, n := range names {
			if n != flag.GetName() {
				continue
			}
			switch f := flag.(type) {
			case cli.StringFlag:
				f.Required = true
				flag = f
			case AddressFlag:
				f.Required = true
				flag = f
			case DecimalFlag:
				f.Required = true
				flag = f
			}
			break
		}
		updatedFlagSet = append(updatedFlagSet, flag)
	}
	return updatedFlagSet
}
