package main

import (
	"errors"
	"os"

	"github.com/idilsaglam/todosync/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
