package main

import (
	"os"

	"github.com/jask/kikaportals/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
