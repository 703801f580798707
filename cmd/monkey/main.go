package main

import (
	"os"

	"github.com/iZarrios/monkey-front/cmd/monkey/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
