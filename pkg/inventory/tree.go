package inventory

import (
	"encoding/json"
	"sort"

	"github.com/inventory-tools/consul-awx/pkg/variant"
)

// Reserved top-level keys of the inventory document. Everything else is a
// group keyed by its sanitized name.
const (
	MetaKey        = "_meta"
	AllGroup       = "all"
	UngroupedGroup = "ungrouped"
)

// VarMap is the per-host variable map handed to the automation layer.
type VarMap map[string]variant.Value

// Group is a named collection of hosts and nested child groups.
type Group struct {
	// Hosts is append-only; a host added twice appears twice.
	Hosts []string `json:"hosts" yaml:"hosts"`

	// Children holds child group names in insertion order, deduplicated
	// per addition.
	Children []string `json:"children" yaml:"children"`
}

func newGroup() *Group {
	return &Group{Hosts: []string{}, Children: []string{}}
}

// Tree is the hierarchical inventory document. It starts with only the
// `all` and `ungrouped` groups plus an empty hostvars map, and is mutated
// incrementally while nodes are processed. `ungrouped` is always present
// and no code path populates it.
type Tree struct {
	Hostvars map[string]VarMap
	Groups   map[string]*Group
}

// NewTree creates the empty inventory skeleton.
func NewTree() *Tree {
	all := newGroup()
	all.Children = append(all.Children, UngroupedGroup)

	return &Tree{
		Hostvars: map[string]VarMap{},
		Groups: map[string]*Group{
			AllGroup:       all,
			UngroupedGroup: newGroup(),
		},
	}
}

// AddToGroup appends host to the group named by the sanitized form of
// group, creating the group if needed. Hosts are never deduplicated.
func (t *Tree) AddToGroup(group, host string) {
	name := Sanitize(group)
	g, ok := t.Groups[name]
	if !ok {
		g = newGroup()
		t.Groups[name] = g
	}
	g.Hosts = append(g.Hosts, host)
}

// finalize registers every group except `all` and `ungrouped` as a child of
// `all` and sorts the result. `ungrouped`, present from construction,
// participates in the sort.
func (t *Tree) finalize() {
	all := t.Groups[AllGroup]
	for name := range t.Groups {
		if name == AllGroup || name == UngroupedGroup {
			continue
		}
		all.Children = append(all.Children, name)
	}
	sort.Strings(all.Children)
}

// asMap flattens the tree into the single JSON object Ansible expects:
// `_meta` with hostvars next to one entry per group.
func (t *Tree) asMap() map[string]any {
	out := make(map[string]any, len(t.Groups)+1)
	out[MetaKey] = map[string]any{"hostvars": t.Hostvars}
	for name, g := range t.Groups {
		out[name] = g
	}
	return out
}

// MarshalJSON emits the flat inventory object with sorted keys.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.asMap())
}

// MarshalYAML mirrors MarshalJSON for the YAML output format.
func (t *Tree) MarshalYAML() (any, error) {
	return t.asMap(), nil
}
