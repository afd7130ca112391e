package main

import (
	"context"
	"fmt"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/multirange/internal/rangecat"
)

func main() {
	cfg, err := rangecat.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(cli.ExitCodeBadRequest)
	}
	cli.Main(context.Background(), rangecat.Command{
		Config: &cfg,
		Logger: &logging.Logger{Out: os.Stderr, Level: cfg.LogLevel},
	})
}
