package authz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// RedisRoleSourceConfig configures the Redis role source. Fields can be
// populated from environment variables via pkg/config.
type RedisRoleSourceConfig struct {
	// RolesKey is the Redis hash holding role definitions: one field per
	// role name, the value a JSON-encoded Role.
	RolesKey string `env:"AUTHZ_REDIS_ROLES_KEY" envDefault:"authz:roles"`
}

// redisRoleSource loads role definitions from a Redis hash.
type redisRoleSource struct {
	client redis.UniversalClient
	key    string
}

// NewRedisRoleSource creates a RoleSource over a Redis hash. Each hash
// field is a role name mapped to a JSON-encoded Role; the field name is
// authoritative and overrides any name embedded in the JSON payload.
func NewRedisRoleSource(client redis.UniversalClient, cfg RedisRoleSourceConfig) RoleSource {
	return &redisRoleSource{
		client: client,
		key:    cfg.RolesKey,
	}
}

// Load fetches and decodes the whole role hash.
func (s *redisRoleSource) Load(ctx context.Context) ([]Role, error) {
	raw, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, errors.Join(ErrLoadingRoles, err)
	}
	return decodeRoleHash(raw)
}

// decodeRoleHash turns a role hash (name -> JSON payload) into role
// definitions sorted by name, so repeated loads register roles in a
// stable order.
func decodeRoleHash(raw map[string]string) ([]Role, error) {
	roles := make([]Role, 0, len(raw))
	for name, payload := range raw {
		var role Role
		if err := json.Unmarshal([]byte(payload), &role); err != nil {
			return nil, errors.Join(ErrParsingRoles, fmt.Errorf("role %q: %w", name, err))
		}
		role.Name = name
		roles = append(roles, role)
	}

	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })
	return roles, nil
}
