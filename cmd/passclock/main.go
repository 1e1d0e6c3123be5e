// main is the entry point for the passclock CLI.
package main

import (
	"fmt"
	"os"

	"github.com/arissops/passclock/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}
