package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	cerrors "github.com/inventory-tools/consul-awx/pkg/errors"
	"github.com/inventory-tools/consul-awx/pkg/serializer"
)

func hostCmd() *cli.Command {
	return &cli.Command{
		Name:      "host",
		Usage:     "Export inventory variables for a single consul node",
		ArgsUsage: "NAME",
		Description: `Fetches one node's detail from the catalog and emits only its variable
map: ansible_host, datacenter, and the coerced metadata values. Groups are
not computed in this mode.`,
		Flags: []cli.Flag{
			pathFlag,
			taggedAddressFlag,
			indentFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return cerrors.New(cerrors.ErrCodeConfig, "a node name is required")
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			builder, _, err := newBuilder(cmd)
			if err != nil {
				return err
			}

			vars, err := builder.HostVars(ctx, name)
			if err != nil {
				return classify(err)
			}

			ser, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"), int(cmd.Int("indent")))
			if err != nil {
				return err
			}
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(vars)
		},
	}
}
