package main

import (
	"fmt"
	"os"
)

// @title Gold Price API
// @version 1.0
// @description Simulated gold prices per currency, purity and unit, with history, CSV export, a currency converter and UI preferences.
// @BasePath /api/v1
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
