package main

import (
	"os"

	"github.com/studyplanhq/studyplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
