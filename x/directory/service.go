package directory

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/permgraph/client"
	"github.com/totegamma/permgraph/core"
)

var tracer = otel.Tracer("directory")

const (
	rolesCachePrefix     = "directory:roles:"
	ancestorsCachePrefix = "directory:ancestors:"
	nodeCachePrefix      = "directory:node:"
	userNodeCachePrefix  = "directory:usernode:"
)

type service struct {
	client client.Client
	rdb    *redis.Client
	mc     *memcache.Client
	ttl    time.Duration
}

// NewService returns a DirectoryService backed by the remote directory.
// Role and ancestor lists are cached in redis, single nodes in memcached.
// Not found answers are never cached.
func NewService(client client.Client, rdb *redis.Client, mc *memcache.Client, config core.Config) core.DirectoryService {
	config = config.WithDefaults()
	return &service{client, rdb, mc, config.DirectoryCacheTTL}
}

func (s *service) GetUserRoles(ctx context.Context, userID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Directory.Service.GetUserRoles")
	defer span.End()

	var roles []string
	if s.fromRedis(ctx, rolesCachePrefix+userID, &roles) {
		return roles, nil
	}

	roles, err := s.client.GetUserRoles(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.toRedis(ctx, rolesCachePrefix+userID, roles)
	return roles, nil
}

func (s *service) GetUserNode(ctx context.Context, userID string) (string, error) {
	ctx, span := tracer.Start(ctx, "Directory.Service.GetUserNode")
	defer span.End()

	if s.mc != nil {
		item, err := s.mc.Get(userNodeCachePrefix + userID)
		if err == nil {
			return string(item.Value), nil
		}
	}

	nodeID, err := s.client.GetUserNode(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	s.toMemcache(ctx, userNodeCachePrefix+userID, []byte(nodeID))
	return nodeID, nil
}

func (s *service) GetNode(ctx context.Context, nodeID string) (core.Node, error) {
	ctx, span := tracer.Start(ctx, "Directory.Service.GetNode")
	defer span.End()

	if s.mc != nil {
		item, err := s.mc.Get(nodeCachePrefix + nodeID)
		if err == nil {
			var node core.Node
			if err := json.Unmarshal(item.Value, &node); err == nil {
				return node, nil
			}
		}
	}

	node, err := s.client.GetNode(ctx, nodeID)
	if err != nil {
		span.RecordError(err)
		return core.Node{}, err
	}

	value, err := json.Marshal(node)
	if err == nil {
		s.toMemcache(ctx, nodeCachePrefix+nodeID, value)
	}
	return node, nil
}

func (s *service) GetAncestors(ctx context.Context, nodeID string) ([]core.Node, error) {
	ctx, span := tracer.Start(ctx, "Directory.Service.GetAncestors")
	defer span.End()

	var ancestors []core.Node
	if s.fromRedis(ctx, ancestorsCachePrefix+nodeID, &ancestors) {
		return ancestors, nil
	}

	ancestors, err := s.client.GetAncestors(ctx, nodeID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.toRedis(ctx, ancestorsCachePrefix+nodeID, ancestors)
	return ancestors, nil
}

func (s *service) fromRedis(ctx context.Context, key string, dest any) bool {
	if s.rdb == nil {
		return false
	}
	cached, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(cached), dest) == nil
}

func (s *service) toRedis(ctx context.Context, key string, value any) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	err = s.rdb.Set(ctx, key, data, s.ttl).Err()
	if err != nil {
		slog.WarnContext(
			ctx, "failed to cache directory answer",
			slog.String("key", key),
			slog.String("error", err.Error()),
			slog.String("module", "directory"),
		)
	}
}

func (s *service) toMemcache(ctx context.Context, key string, value []byte) {
	if s.mc == nil {
		return
	}
	err := s.mc.Set(&memcache.Item{Key: key, Value: value, Expiration: int32(s.ttl.Seconds())})
	if err != nil {
		slog.WarnContext(
			ctx, "failed to cache directory answer",
			slog.String("key", key),
			slog.String("error", err.Error()),
			slog.String("module", "directory"),
		)
	}
}
