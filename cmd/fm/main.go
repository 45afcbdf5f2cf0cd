package main

import (
	"os"

	"github.com/bnema/faulkner-machine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
