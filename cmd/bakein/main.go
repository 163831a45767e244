package main

import (
	"fmt"
	"os"

	"github.com/teranos/bakein/cmd/bakein/commands"
	"github.com/teranos/bakein/logger"
)

func main() {
	err := commands.RootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
