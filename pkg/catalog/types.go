package catalog

// Tagged-address classes a node may expose. The selected class becomes the
// ansible_host of every exported node.
const (
	AddressWan     = "wan"
	AddressWanIPv4 = "wan_ipv4"
	AddressLan     = "lan"
	AddressLanIPv4 = "lan_ipv4"
)

// AddressClasses lists the tagged-address classes accepted by the exporter.
func AddressClasses() []string {
	return []string{AddressWan, AddressWanIPv4, AddressLan, AddressLanIPv4}
}

// ValidAddressClass reports whether class is one of the accepted
// tagged-address classes.
func ValidAddressClass(class string) bool {
	for _, c := range AddressClasses() {
		if c == class {
			return true
		}
	}
	return false
}

// Node is a registered host in the catalog.
type Node struct {
	// Name is the unique node identifier.
	Name string

	// Datacenter the node is registered in.
	Datacenter string

	// TaggedAddresses maps an address class (wan, wan_ipv4, lan, lan_ipv4)
	// to an address.
	TaggedAddresses map[string]string

	// Meta holds the node's metadata key/value pairs. May be nil.
	Meta map[string]string
}

// Service is a single service registration on a node. Tag order is whatever
// the catalog returned; it is not guaranteed stable across calls.
type Service struct {
	Name string
	Tags []string
}

// NodeDetail is a node together with its service registrations.
type NodeDetail struct {
	Node     *Node
	Services []*Service
}
