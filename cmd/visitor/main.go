package main

import (
	"fmt"
	"os"

	"github.com/abhishek622/portfolioapp/cmd/visitor/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
