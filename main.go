package main

import (
	"os"

	"github.com/akito/kotoba/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
