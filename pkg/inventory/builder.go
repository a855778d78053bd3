// Package inventory transforms catalog nodes and their service
// registrations into the hierarchical inventory document consumed by the
// automation layer. Nodes are grouped by datacenter, by metadata key/value
// pairs, and by service name and tag, with per-host variables derived from
// node metadata.
package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inventory-tools/consul-awx/pkg/catalog"
	"github.com/inventory-tools/consul-awx/pkg/variant"
)

// MissingAddressError is returned when a node does not expose the requested
// tagged-address class. The whole build fails; no partial inventory is
// produced.
type MissingAddressError struct {
	Node  string
	Class string
}

func (e *MissingAddressError) Error() string {
	return fmt.Sprintf("node %q has no tagged address of class %q", e.Node, e.Class)
}

// Builder accumulates catalog nodes into an inventory tree. It fetches each
// node's service registrations through the catalog client, one call per
// node, in input order.
type Builder struct {
	client  catalog.Client
	address string
	types   map[string]variant.Type
	tree    *Tree
}

// NewBuilder creates a builder exporting the given tagged-address class as
// ansible_host. types optionally forces coercion per metadata key.
func NewBuilder(client catalog.Client, taggedAddress string, types map[string]variant.Type) *Builder {
	return &Builder{
		client:  client,
		address: taggedAddress,
		types:   types,
		tree:    NewTree(),
	}
}

// Build processes nodes in input order and returns the completed tree.
// Catalog client errors and missing tagged addresses abort the build.
func (b *Builder) Build(ctx context.Context, nodes []*catalog.Node) (*Tree, error) {
	for _, node := range nodes {
		if err := b.addNode(ctx, node); err != nil {
			return nil, err
		}
	}
	b.tree.finalize()

	slog.Debug("inventory built",
		slog.Int("hosts", len(b.tree.Hostvars)),
		slog.Int("groups", len(b.tree.Groups)),
	)
	return b.tree, nil
}

// HostVars fetches a single node's detail and returns only its variable
// map, leaving groups untouched.
func (b *Builder) HostVars(ctx context.Context, nodeName string) (VarMap, error) {
	detail, err := b.client.Node(ctx, nodeName)
	if err != nil {
		return nil, err
	}
	return NodeVars(detail.Node, b.address, b.types)
}

func (b *Builder) addNode(ctx context.Context, node *catalog.Node) error {
	vars, err := NodeVars(node, b.address, b.types)
	if err != nil {
		return err
	}
	// Duplicate node names overwrite the previous entry.
	b.tree.Hostvars[node.Name] = vars

	b.tree.AddToGroup(node.Datacenter, node.Name)

	for key, value := range node.Meta {
		if strings.TrimSpace(value) == "" {
			continue
		}
		b.addMetaGroup(node.Name, key, value)
	}

	return b.addServiceGroups(ctx, node)
}

// addMetaGroup maps one metadata pair to group membership. A false flag
// means the host is NOT in the group, so no membership is created; a true
// flag names the group after the key alone; anything else concatenates key
// and value.
func (b *Builder) addMetaGroup(host, key, value string) {
	coerced := variant.Coerce(value, "")
	if coerced.Kind() == variant.KindBool {
		if flag, _ := coerced.Any().(bool); flag {
			b.tree.AddToGroup(key, host)
		}
		return
	}
	b.tree.AddToGroup(key+"_"+strings.TrimSpace(value), host)
}

// addServiceGroups fetches the node's service registrations and adds the
// node to one group per service and one per service/tag pair, nesting the
// tag groups under the service group.
func (b *Builder) addServiceGroups(ctx context.Context, node *catalog.Node) error {
	detail, err := b.client.Node(ctx, node.Name)
	if err != nil {
		return err
	}

	for _, svc := range detail.Services {
		name := Sanitize(svc.Name)
		b.tree.AddToGroup(name, node.Name)
		group := b.tree.Groups[name]

		for _, tag := range svc.Tags {
			tagGroup := Sanitize(name + "_" + tag)
			b.tree.AddToGroup(tagGroup, node.Name)
			if !containsString(group.Children, tagGroup) {
				group.Children = append(group.Children, tagGroup)
			}
		}
	}
	return nil
}

// NodeVars computes the variable map for one node: ansible_host from the
// requested tagged-address class, the datacenter, and every non-empty
// metadata value coerced per the override map.
func NodeVars(node *catalog.Node, taggedAddress string, types map[string]variant.Type) (VarMap, error) {
	addr, ok := node.TaggedAddresses[taggedAddress]
	if !ok {
		return nil, &MissingAddressError{Node: node.Name, Class: taggedAddress}
	}

	vars := VarMap{
		"ansible_host": variant.Str(addr),
		"datacenter":   variant.Str(node.Datacenter),
	}
	for key, value := range node.Meta {
		if value == "" {
			continue
		}
		vars[key] = variant.Coerce(value, types[key])
	}
	return vars, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
