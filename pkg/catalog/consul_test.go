package catalog

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/hashicorp/consul/api"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventory-tools/consul-awx/pkg/config"
)

func newTestClient(t *testing.T) *ConsulClient {
	t.Helper()

	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	apiCfg := api.DefaultConfig()
	apiCfg.Address = "consul.test:8500"
	apiCfg.HttpClient = httpClient

	client, err := api.NewClient(apiCfg)
	require.NoError(t, err)
	return &ConsulClient{catalog: client.Catalog()}
}

func TestNewConsulClient(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Token = "tok"
	cfg.Datacenter = "dc1"
	cfg.Verify = false

	client, err := NewConsulClient(cfg)
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestConsulClient_Nodes(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", "http://consul.test:8500/v1/catalog/nodes",
		httpmock.NewStringResponder(200, `[
			{
				"ID": "40e4a748-2192-161a-0510-9bf59fe950b5",
				"Node": "node1",
				"Address": "10.0.0.1",
				"Datacenter": "dc1",
				"TaggedAddresses": {"lan": "10.0.0.1", "wan": "198.51.100.1"},
				"Meta": {"env": "prod"}
			},
			{
				"ID": "8d019867-2b1b-44d1-87cf-26f73d9e1358",
				"Node": "node2",
				"Address": "10.0.0.2",
				"Datacenter": "dc1",
				"TaggedAddresses": {"lan": "10.0.0.2"},
				"Meta": null
			}
		]`))

	nodes, err := client.Nodes(context.Background(), "", nil)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	assert.Equal(t, "node1", nodes[0].Name)
	assert.Equal(t, "dc1", nodes[0].Datacenter)
	assert.Equal(t, "198.51.100.1", nodes[0].TaggedAddresses["wan"])
	assert.Equal(t, map[string]string{"env": "prod"}, nodes[0].Meta)

	assert.Equal(t, "node2", nodes[1].Name)
	assert.Nil(t, nodes[1].Meta)
}

func TestConsulClient_NodesPassesFilter(t *testing.T) {
	client := newTestClient(t)

	var gotQuery map[string][]string
	httpmock.RegisterResponder("GET", "http://consul.test:8500/v1/catalog/nodes",
		func(req *http.Request) (*http.Response, error) {
			gotQuery = req.URL.Query()
			return httpmock.NewStringResponse(200, `[]`), nil
		})

	_, err := client.Nodes(context.Background(), "dc2", map[string]string{"env": "prod"})
	require.NoError(t, err)

	assert.Equal(t, []string{"dc2"}, gotQuery["dc"])
	assert.Equal(t, []string{"env:prod"}, gotQuery["node-meta"])
}

func TestConsulClient_Node(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", "http://consul.test:8500/v1/catalog/node/node1",
		httpmock.NewStringResponder(200, `{
			"Node": {
				"Node": "node1",
				"Address": "10.0.0.1",
				"Datacenter": "dc1",
				"TaggedAddresses": {"lan": "10.0.0.1"},
				"Meta": {"env": "prod"}
			},
			"Services": {
				"web": {"ID": "web", "Service": "web", "Tags": []},
				"redis1": {"ID": "redis1", "Service": "redis", "Tags": ["primary", "v1"]}
			}
		}`))

	detail, err := client.Node(context.Background(), "node1")
	require.NoError(t, err)

	assert.Equal(t, "node1", detail.Node.Name)
	require.Len(t, detail.Services, 2)
	// Services come back sorted by name regardless of wire order.
	assert.Equal(t, "redis", detail.Services[0].Name)
	assert.Equal(t, []string{"primary", "v1"}, detail.Services[0].Tags)
	assert.Equal(t, "web", detail.Services[1].Name)
}

func TestConsulClient_NodeNotFound(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", "http://consul.test:8500/v1/catalog/node/ghost",
		httpmock.NewStringResponder(200, `null`))

	_, err := client.Node(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorContains(t, err, "not found")
}

func TestConsulClient_TransportError(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", "http://consul.test:8500/v1/catalog/nodes",
		httpmock.NewErrorResponder(errors.New("connection refused")))

	_, err := client.Nodes(context.Background(), "", nil)
	require.Error(t, err)
}

func TestValidAddressClass(t *testing.T) {
	for _, class := range AddressClasses() {
		assert.True(t, ValidAddressClass(class), class)
	}
	for _, class := range []string{"", "public", "LAN", "lan_ipv6"} {
		assert.False(t, ValidAddressClass(class), class)
	}
}
