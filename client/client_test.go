package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/permgraph/core"
)

func TestDirectoryClient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/alice/roles", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Write([]byte(`{"status":"ok","content":["editor","viewer"]}`))
	})
	mux.HandleFunc("/users/alice/node", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok","content":{"nodeID":"team-a"}}`))
	})
	mux.HandleFunc("/nodes/team-a", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok","content":{"id":"team-a","parentID":"eng","level":3,"type":"team"}}`))
	})
	mux.HandleFunc("/nodes/team-a/ancestors", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok","content":[{"id":"root","level":1,"type":"organization"},{"id":"eng","parentID":"root","level":2,"type":"department"}]}`))
	})
	mux.HandleFunc("/nodes/broken", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","error":"backend down"}`))
	})
	mux.HandleFunc("/nodes/flaky", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := NewClient(server.URL+"/", 0)
	ctx := context.Background()

	roles, err := c.GetUserRoles(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, []string{"editor", "viewer"}, roles)

	nodeID, err := c.GetUserNode(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, "team-a", nodeID)

	node, err := c.GetNode(ctx, "team-a")
	assert.NoError(t, err)
	assert.Equal(t, core.Node{ID: "team-a", ParentID: "eng", Level: 3, Type: "team"}, node)

	ancestors, err := c.GetAncestors(ctx, "team-a")
	assert.NoError(t, err)
	assert.Len(t, ancestors, 2)

	_, err = c.GetNode(ctx, "unknown")
	assert.True(t, core.IsNotFound(err))

	_, err = c.GetNode(ctx, "broken")
	assert.Error(t, err)
	assert.False(t, core.IsNotFound(err))

	_, err = c.GetNode(ctx, "flaky")
	assert.Error(t, err)
}
