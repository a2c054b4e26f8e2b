package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/repository"
	"github.com/jhoicas/auth-service/pkg/logger"
)

var _ repository.RoleRepository = (*CachedRoleRepository)(nil)

const (
	keyPrefix = "auth:role:"
	keyAll    = "auth:roles:all"
)

// CachedRoleRepository decora un RoleRepository con caché en Redis.
// Los roles son datos de referencia; los ausentes no se cachean.
// Si Redis falla se consulta el repositorio subyacente.
type CachedRoleRepository struct {
	next repository.RoleRepository
	rdb  goredis.Cmdable
	ttl  time.Duration
	log  *logger.Logger
}

func NewCachedRoleRepository(next repository.RoleRepository, rdb goredis.Cmdable, ttl time.Duration, log *logger.Logger) *CachedRoleRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CachedRoleRepository{next: next, rdb: rdb, ttl: ttl, log: log.Named("role_cache")}
}

type cachedRole struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *CachedRoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	return c.findOne(ctx, keyPrefix+"name:"+name, func() (*entity.Role, error) {
		return c.next.FindByName(ctx, name)
	})
}

func (c *CachedRoleRepository) FindByID(ctx context.Context, id string) (*entity.Role, error) {
	return c.findOne(ctx, keyPrefix+"id:"+id, func() (*entity.Role, error) {
		return c.next.FindByID(ctx, id)
	})
}

func (c *CachedRoleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	var cached []cachedRole
	if c.get(ctx, keyAll, &cached) {
		out := make([]*entity.Role, 0, len(cached))
		for _, r := range cached {
			out = append(out, r.toEntity())
		}
		return out, nil
	}
	roles, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}
	toCache := make([]cachedRole, 0, len(roles))
	for _, r := range roles {
		toCache = append(toCache, fromEntity(r))
	}
	c.set(ctx, keyAll, toCache)
	return roles, nil
}

// Invalidate borra todas las entradas conocidas de un rol y el listado.
func (c *CachedRoleRepository) Invalidate(ctx context.Context, role entity.Role) error {
	return c.rdb.Del(ctx, keyPrefix+"name:"+role.Name, keyPrefix+"id:"+role.ID, keyAll).Err()
}

func (c *CachedRoleRepository) findOne(ctx context.Context, key string, load func() (*entity.Role, error)) (*entity.Role, error) {
	var cached cachedRole
	if c.get(ctx, key, &cached) {
		return cached.toEntity(), nil
	}
	role, err := load()
	if err != nil || role == nil {
		return role, err
	}
	c.set(ctx, key, fromEntity(role))
	return role, nil
}

func (c *CachedRoleRepository) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("lectura de caché fallida")
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("entrada de caché corrupta")
		return false
	}
	return true
}

func (c *CachedRoleRepository) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("escritura de caché fallida")
	}
}

func fromEntity(r *entity.Role) cachedRole {
	return cachedRole{ID: r.ID, Name: r.Name, Description: r.Description, CreatedAt: r.CreatedAt}
}

func (r cachedRole) toEntity() *entity.Role {
	return &entity.Role{ID: r.ID, Name: r.Name, Description: r.Description, CreatedAt: r.CreatedAt}
}
