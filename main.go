package main

import (
	"os"

	"github.com/adamlaw669/Curio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
