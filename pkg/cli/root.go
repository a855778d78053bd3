package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/inventory-tools/consul-awx/pkg/catalog"
	"github.com/inventory-tools/consul-awx/pkg/config"
	"github.com/inventory-tools/consul-awx/pkg/serializer"
)

// version is embedded at build time using ldflags.
var version = "dev"

// Flags shared by the list and host commands.
var (
	pathFlag = &cli.StringFlag{
		Name:    "path",
		Aliases: []string{"p"},
		Usage:   "path to the configuration file",
	}
	taggedAddressFlag = &cli.StringFlag{
		Name: "tagged-address",
		Usage: fmt.Sprintf("tagged address class used as ansible_host (%s)",
			strings.Join(catalog.AddressClasses(), ", ")),
	}
	indentFlag = &cli.IntFlag{
		Name:  "indent",
		Value: serializer.DefaultIndent,
		Usage: "output indent width",
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Value: string(serializer.FormatJSON),
		Usage: fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
)

// New builds the command tree.
func New() *cli.Command {
	return &cli.Command{
		Name:    "consul-awx",
		Usage:   "Produce an Ansible inventory from the nodes of a Consul cluster",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "output logs in JSON format",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			listCmd(),
			hostCmd(),
		},
	}
}

// setupLogging configures the default slog logger. Logs go to stderr so the
// inventory document on stdout stays machine-parseable.
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := slog.LevelWarn
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			level = slog.LevelWarn
		}
	}
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cmd.Bool("log-json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
	return ctx, nil
}

func configPath(cmd *cli.Command) string {
	if p := cmd.String("path"); p != "" {
		return p
	}
	return config.DefaultPath()
}
