package client

import (
	"github.com/clickup-mcp/webhook-relay/pkg/messaging"
	"go-micro.dev/v4/client"
	"go-micro.dev/v4/registry"
)

// NewClient builds the go-micro client both relay binaries share. Payloads
// are json end to end, so the content type is pinned here.
func NewClient(
	registry registry.Registry, broker messaging.BrokerWithOptions,
) client.Client {
	return client.NewClient(
		client.Registry(registry),
		client.Broker(broker.Broker),
		client.ContentType("application/json"),
	)
}
