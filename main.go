package main

import (
	"os"

	"github.com/arturo/voltz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
