// SPDX-License-Identifier: MIT

// Command dunit looks up units and converts dimensioned quantities.
package main

import (
	"context"
	"os"

	"github.com/katalvlaran/dunits/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
