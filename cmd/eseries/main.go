// Command eseries looks up preferred number series values and computes
// regulator feedback dividers.
package main

import (
	"fmt"
	"os"

	"github.com/calebcase/eseries/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
