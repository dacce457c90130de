//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client.go
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/permgraph/core"
)

const (
	defaultTimeout = 3 * time.Second
)

var tracer = otel.Tracer("client")

// Client talks to the external directory service that owns users, roles and nodes.
type Client interface {
	GetUserRoles(ctx context.Context, userID string) ([]string, error)
	GetUserNode(ctx context.Context, userID string) (string, error)
	GetNode(ctx context.Context, nodeID string) (core.Node, error)
	GetAncestors(ctx context.Context, nodeID string) ([]core.Node, error)
}

type client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, timeout time.Duration) Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type userNode struct {
	NodeID string `json:"nodeID"`
}

func (c *client) GetUserRoles(ctx context.Context, userID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Client.GetUserRoles")
	defer span.End()

	roles, err := get[[]string](ctx, c, "/users/"+url.PathEscape(userID)+"/roles")
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return roles, nil
}

func (c *client) GetUserNode(ctx context.Context, userID string) (string, error) {
	ctx, span := tracer.Start(ctx, "Client.GetUserNode")
	defer span.End()

	node, err := get[userNode](ctx, c, "/users/"+url.PathEscape(userID)+"/node")
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	return node.NodeID, nil
}

func (c *client) GetNode(ctx context.Context, nodeID string) (core.Node, error) {
	ctx, span := tracer.Start(ctx, "Client.GetNode")
	defer span.End()

	node, err := get[core.Node](ctx, c, "/nodes/"+url.PathEscape(nodeID))
	if err != nil {
		span.RecordError(err)
		return core.Node{}, err
	}

	return node, nil
}

func (c *client) GetAncestors(ctx context.Context, nodeID string) ([]core.Node, error) {
	ctx, span := tracer.Start(ctx, "Client.GetAncestors")
	defer span.End()

	nodes, err := get[[]core.Node](ctx, c, "/nodes/"+url.PathEscape(nodeID)+"/ancestors")
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return nodes, nil
}

func get[T any](ctx context.Context, c *client, path string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, "GET", c.endpoint+path, nil)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return zero, core.NewErrorNotFound()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, err
	}

	if resp.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("directory returned %d: %s", resp.StatusCode, string(body))
	}

	var response core.ResponseBase[T]
	err = json.Unmarshal(body, &response)
	if err != nil {
		return zero, err
	}

	if response.Status != "ok" {
		return zero, fmt.Errorf("directory error: %s", response.Error)
	}

	return response.Content, nil
}
