package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/inventory-tools/consul-awx/pkg/cli"
)

func main() {
	if err := cli.New().Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
