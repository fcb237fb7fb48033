package main

import (
	"fmt"
	"os"

	"github.com/urano-b2b/internal/cli"
	"github.com/urano-b2b/internal/logger"
)

func main() {
	err := cli.NewRootCommand(nil).Execute()
	logger.Sync()
	if err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "✖ %s\n", cli.UserMessage(err))
		}
		os.Exit(cli.GetExitCode(err))
	}
}
