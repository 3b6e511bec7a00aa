package main

import (
	"fmt"
	"os"

	"github.com/inkmill/inkmill/cmd/inkmill/commands"
	"github.com/inkmill/inkmill/logger"
)

func main() {
	defer logger.Sync()

	if err := commands.RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
