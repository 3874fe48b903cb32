// Package renderer turns fincalc result records into markdown reports.
// Every function is pure: it takes a result record and returns a string the
// CLI can print raw or render to the terminal.
package renderer

import (
	"fmt"

	"github.com/fincalc/fincalc"
)

// money formats a float amount in the report currency.
func money(v float64, currency string) string {
	return fincalc.M(v, currency).String()
}

// months formats a month count as "Xy Zm" for readability.
func months(n int) string {
	if n < 12 {
		return fmt.Sprintf("%dmo", n)
	}
	if n%12 == 0 {
		return fmt.Sprintf("%dy", n/12)
	}
	return fmt.Sprintf("%dy %dmo", n/12, n%12)
}
