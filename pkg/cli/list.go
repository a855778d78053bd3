package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/inventory-tools/consul-awx/pkg/config"
	"github.com/inventory-tools/consul-awx/pkg/serializer"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Export inventory variables for all nodes in the consul cluster",
		Description: `Queries the catalog for every registered node and emits the full
hierarchical inventory: one group per datacenter, per metadata key/value
pair, per service, and per service tag, plus per-host variables under
_meta.hostvars.

The node listing can be narrowed with --datacenter or with a node-meta
filter from CONSUL_NODE_META or the [consul_node_meta] section of the
configuration file.`,
		Flags: []cli.Flag{
			pathFlag,
			&cli.StringFlag{
				Name:  "datacenter",
				Usage: "narrow the export to a specific catalog datacenter",
			},
			taggedAddressFlag,
			indentFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			builder, client, err := newBuilder(cmd)
			if err != nil {
				return err
			}

			nodeMeta, err := config.LoadNodeMeta(configPath(cmd))
			if err != nil {
				return err
			}

			nodes, err := client.Nodes(ctx, cmd.String("datacenter"), nodeMeta)
			if err != nil {
				return classify(err)
			}
			slog.Debug("catalog nodes listed", slog.Int("count", len(nodes)))

			tree, err := builder.Build(ctx, nodes)
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

			return ser.Serialize(tree)
		},
	}
}
