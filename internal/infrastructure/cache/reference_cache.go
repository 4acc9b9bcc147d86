package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
	"github.com/jhoicas/Inventario-activos/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceCache)(nil)

const keyPrefix = "inventario:options:"

// Store subconjunto de comandos Redis que usa la caché (*redis.Client lo cumple).
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ReferenceCache decora un ReferenceRepository guardando en Redis las listas de opciones por tipo.
// Exists no se cachea: la validación de FKs debe ver el estado actual.
// Un Redis caído no rompe la lectura, se degrada al repositorio.
type ReferenceCache struct {
	next  repository.ReferenceRepository
	store Store
	ttl   time.Duration
	log   zerolog.Logger
}

// NewReferenceCache construye el decorador.
func NewReferenceCache(next repository.ReferenceRepository, store Store, ttl time.Duration, log zerolog.Logger) *ReferenceCache {
	return &ReferenceCache{next: next, store: store, ttl: ttl, log: log}
}

// NewClient crea el cliente Redis y verifica la conexión con un ping.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (c *ReferenceCache) ListOptions(ctx context.Context, kind entity.ReferenceKind) ([]entity.Option, error) {
	key := keyPrefix + string(kind)

	raw, err := c.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var opts []entity.Option
		if jerr := json.Unmarshal(raw, &opts); jerr == nil {
			return opts, nil
		}
		c.log.Warn().Str("key", key).Msg("entrada de caché corrupta, se recarga")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("key", key).Msg("redis no disponible, lectura directa")
	}

	opts, err := c.next.ListOptions(ctx, kind)
	if err != nil {
		return nil, err
	}
	if data, jerr := json.Marshal(opts); jerr == nil {
		if serr := c.store.Set(ctx, key, data, c.ttl).Err(); serr != nil {
			c.log.Warn().Err(serr).Str("key", key).Msg("no se pudo guardar en caché")
		}
	}
	return opts, nil
}

func (c *ReferenceCache) Exists(ctx context.Context, kind entity.ReferenceKind, id int64) (bool, error) {
	return c.next.Exists(ctx, kind, id)
}

// Invalidate borra la lista cacheada de un tipo (tras importaciones o cambios de referencias).
func (c *ReferenceCache) Invalidate(ctx context.Context, kinds ...entity.ReferenceKind) error {
	if len(kinds) == 0 {
		kinds = entity.ReferenceKinds
	}
	keys := make([]string, 0, len(kinds))
	for _, k := range kinds {
		keys = append(keys, keyPrefix+string(k))
	}
	return c.store.Del(ctx, keys...).Err()
}
