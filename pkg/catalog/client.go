package catalog

import "context"

// Client defines read access to the service catalog.
// This interface enables dependency injection for testing.
type Client interface {
	// Nodes lists registered nodes, optionally narrowed to a datacenter and
	// to nodes matching every key/value pair of filter exactly.
	Nodes(ctx context.Context, datacenter string, filter map[string]string) ([]*Node, error)

	// Node fetches a single node's detail including its service
	// registrations.
	Node(ctx context.Context, name string) (*NodeDetail, error)
}
