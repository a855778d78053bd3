package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/hashicorp/consul/api"

	"github.com/inventory-tools/consul-awx/pkg/config"
)

// ConsulClient implements Client against a Consul catalog using the
// official API client. It performs no retries; any retry or timeout policy
// is left to the underlying HTTP transport.
type ConsulClient struct {
	catalog *api.Catalog
}

// NewConsulClient creates a catalog client from connection parameters.
// No network call is made until the first query.
func NewConsulClient(cfg *config.Config) (*ConsulClient, error) {
	apiCfg := api.DefaultConfig()
	apiCfg.Address = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	apiCfg.Scheme = cfg.Scheme
	apiCfg.Token = cfg.Token
	apiCfg.Datacenter = cfg.Datacenter
	apiCfg.TLSConfig = api.TLSConfig{
		CertFile:           cfg.Cert,
		InsecureSkipVerify: !cfg.Verify,
	}

	client, err := api.NewClient(apiCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create consul client: %w", err)
	}

	return &ConsulClient{catalog: client.Catalog()}, nil
}

// Nodes lists registered nodes, narrowed by datacenter and an exact-match
// node-meta filter when given.
func (c *ConsulClient) Nodes(ctx context.Context, datacenter string, filter map[string]string) ([]*Node, error) {
	slog.Debug("listing catalog nodes",
		slog.String("datacenter", datacenter),
		slog.Int("filter_keys", len(filter)),
	)

	opts := &api.QueryOptions{
		Datacenter: datacenter,
		NodeMeta:   filter,
	}
	raw, _, err := c.catalog.Nodes(opts.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog nodes: %w", err)
	}

	nodes := make([]*Node, 0, len(raw))
	for _, n := range raw {
		nodes = append(nodes, convertNode(n))
	}
	return nodes, nil
}

// Node fetches one node's detail including its service registrations.
// Services are returned sorted by name so repeated exports are stable.
func (c *ConsulClient) Node(ctx context.Context, name string) (*NodeDetail, error) {
	slog.Debug("fetching node services", slog.String("node", name))

	opts := &api.QueryOptions{}
	raw, _, err := c.catalog.Node(name, opts.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch node %q: %w", name, err)
	}
	if raw == nil || raw.Node == nil {
		return nil, fmt.Errorf("node %q not found in catalog", name)
	}

	services := make([]*Service, 0, len(raw.Services))
	for _, s := range raw.Services {
		services = append(services, &Service{Name: s.Service, Tags: s.Tags})
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })

	return &NodeDetail{Node: convertNode(raw.Node), Services: services}, nil
}

func convertNode(n *api.Node) *Node {
	return &Node{
		Name:            n.Node,
		Datacenter:      n.Datacenter,
		TaggedAddresses: n.TaggedAddresses,
		Meta:            n.Meta,
	}
}
