// Package cli implements the command-line interface for the consul-awx
// inventory exporter.
//
// # Commands
//
// list - export the full inventory:
//
//	consul-awx list [--datacenter DC] [--tagged-address lan] [--format json|yaml]
//
// Queries the catalog for all registered nodes (optionally filtered by
// datacenter and node metadata) and prints the hierarchical Ansible
// inventory document on stdout.
//
// host - export a single node's variables:
//
//	consul-awx host NAME [--tagged-address lan]
//
// # Global Flags
//
//	--debug, -d    Enable debug logging
//	--log-json     Output logs in JSON format
//	--version, -v  Show version information
//
// # Environment Variables
//
//	CONSUL_URL             Catalog address (scheme://host:port); shadows the config file
//	CONSUL_TOKEN           ACL token
//	CONSUL_SSL_VERIFY      TLS verification (true/1/yes or false/0/no)
//	CONSUL_DC              Default datacenter
//	CONSUL_CERT            Client certificate path
//	CONSUL_NODE_META       JSON object narrowing the node listing by metadata
//	CONSUL_META_TYPES      JSON object forcing metadata coercion (str, int, bool)
//	CONSUL_TAGGED_ADDRESS  Tagged-address class used as ansible_host
//	LOG_LEVEL              Logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  Configuration, connectivity, or data error
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/inventory-tools/consul-awx/pkg/cli.version=1.0.0'"
package cli
