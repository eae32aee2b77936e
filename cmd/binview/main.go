package main

import (
	"context"
	"os"

	"github.com/cam-per/binview/internal/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
