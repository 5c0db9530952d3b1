package neoapi

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxQueries limits the number of RPC nodes queried simultaneously.
const maxQueries = 8

// Endpoints returns the RPC nodes configured for the network.
func (c *Client) Endpoints(net string) ([]string, error) {
	endpoints, ok := c.networks[net]
	if !ok || len(endpoints) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, net)
	}
	return endpoints, nil
}

// GetRPCEndpoint returns the RPC node of the network with the highest block
// height. Networks with a single node get it returned without querying.
func (c *Client) GetRPCEndpoint(ctx context.Context, net string) (string, error) {
	endpoints, err := c.Endpoints(net)
	if err != nil {
		return "", err
	}
	if len(endpoints) == 1 {
		return endpoints[0], nil
	}
	endpoint, rpc, err := c.highest(ctx, net, endpoints)
	if err != nil {
		return "", err
	}
	rpc.Close()
	return endpoint, nil
}

// connect returns an RPC client for the best node of the network.
func (c *Client) connect(ctx context.Context, net string) (RPC, error) {
	endpoints, err := c.Endpoints(net)
	if err != nil {
		return nil, err
	}
	if len(endpoints) == 1 {
		return c.dial(ctx, endpoints[0])
	}
	_, rpc, err := c.highest(ctx, net, endpoints)
	return rpc, err
}

// highest dials every endpoint and returns the client of the node with the
// highest block height. All the other clients are closed.
func (c *Client) highest(ctx context.Context, net string, endpoints []string) (string, RPC, error) {
	var (
		heights = make([]uint32, len(endpoints))
		clients = make([]RPC, len(endpoints))
		g       errgroup.Group
	)
	g.SetLimit(maxQueries)
	for i := range endpoints {
		i := i
		g.Go(func() error {
			rpc, err := c.dial(ctx, endpoints[i])
			if err != nil {
				c.log.Debug("RPC node is unavailable", zap.String("endpoint", endpoints[i]), zap.Error(err))
				return nil
			}
			h, err := rpc.GetBlockCount()
			if err != nil {
				rpc.Close()
				c.log.Debug("failed to get block count", zap.String("endpoint", endpoints[i]), zap.Error(err))
				return nil
			}
			heights[i], clients[i] = h, rpc
			return nil
		})
	}
	_ = g.Wait()

	best := -1
	for i := range endpoints {
		if clients[i] != nil && (best < 0 || heights[i] > heights[best]) {
			best = i
		}
	}
	for i := range clients {
		if clients[i] != nil && (i != best || ctx.Err() != nil) {
			clients[i].Close()
		}
	}
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	if best < 0 {
		return "", nil, fmt.Errorf("%w: network %s", ErrNoEndpoint, net)
	}
	c.log.Debug("selected RPC node",
		zap.String("network", net),
		zap.String("endpoint", endpoints[best]),
		zap.Uint32("height", heights[best]))
	return endpoints[best], clients[best], nil
}
