package main

import (
	"errors"
	"os"

	"github.com/bimmerbailey/timegate/cmd"
	"github.com/bimmerbailey/timegate/internal/config"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, config.ErrConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
