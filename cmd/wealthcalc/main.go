// Command wealthcalc projects SIP growth, Monte Carlo market scenarios, the
// cost of delaying investment and goal affordability.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
