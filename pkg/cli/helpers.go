package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/inventory-tools/consul-awx/pkg/catalog"
	"github.com/inventory-tools/consul-awx/pkg/config"
	cerrors "github.com/inventory-tools/consul-awx/pkg/errors"
	"github.com/inventory-tools/consul-awx/pkg/inventory"
	"github.com/inventory-tools/consul-awx/pkg/serializer"
)

// parseOutputFormat extracts and validates the output format from CLI flags.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", cerrors.New(cerrors.ErrCodeConfig,
			fmt.Sprintf("unknown output format %q, valid formats are: %s",
				outFormat, strings.Join(serializer.SupportedFormats(), ", ")))
	}
	return outFormat, nil
}

// resolveTaggedAddress picks the tagged-address class from the flag, the
// CONSUL_TAGGED_ADDRESS environment variable, or the lan default, and
// validates it before any network call is made.
func resolveTaggedAddress(cmd *cli.Command) (string, error) {
	addr := cmd.String("tagged-address")
	if addr == "" {
		addr = os.Getenv(config.EnvTaggedAddress)
	}
	if addr == "" {
		addr = catalog.AddressLan
	}
	if !catalog.ValidAddressClass(addr) {
		return "", cerrors.New(cerrors.ErrCodeConfig,
			fmt.Sprintf("invalid tagged_address %q, must be one of: %s",
				addr, strings.Join(catalog.AddressClasses(), ", ")))
	}
	return addr, nil
}

// newBuilder wires the configuration, catalog client, and inventory builder
// for a command invocation. All configuration errors surface here, before
// any network call.
func newBuilder(cmd *cli.Command) (*inventory.Builder, *catalog.ConsulClient, error) {
	path := configPath(cmd)

	taggedAddress, err := resolveTaggedAddress(cmd)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	types, err := config.LoadMetaTypes(path)
	if err != nil {
		return nil, nil, err
	}

	client, err := catalog.NewConsulClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return inventory.NewBuilder(client, taggedAddress, types), client, nil
}

// classify maps failures from the build phase onto the error taxonomy:
// missing tagged addresses are data errors, everything else reaching this
// point is a catalog connectivity failure.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var missing *inventory.MissingAddressError
	if errors.As(err, &missing) {
		return cerrors.Wrap(cerrors.ErrCodeData, "cannot build inventory", err)
	}

	var coded *cerrors.Error
	if errors.As(err, &coded) {
		return err
	}
	return cerrors.Wrap(cerrors.ErrCodeConnectivity, "failed to connect to consul", err)
}
