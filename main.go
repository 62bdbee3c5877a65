package main

import (
	"fmt"
	"os"

	"mspro-labs/menuboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
