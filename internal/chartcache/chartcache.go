// Package chartcache memoizes chart payloads in an external store. The
// dataset never changes while the process runs, so entries are keyed by the
// dataset fingerprint plus a hash of the request.
package chartcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/zeebo/xxh3"
	"golang.org/x/sync/singleflight"

	"github.com/yourorg/vehicle-dashboard/internal/charts"
	"github.com/yourorg/vehicle-dashboard/internal/filter"
)

// Store is the subset of redisx.Client the cache needs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

// Outcome labels how a payload was obtained.
type Outcome string

const (
	Hit  Outcome = "hit"
	Miss Outcome = "miss"
	Off  Outcome = "off"
)

type Cache struct {
	store  Store
	ttl    time.Duration
	prefix string
	log    *slog.Logger
	group  singleflight.Group
}

// New returns a cache over store. A nil store disables caching.
func New(store Store, fingerprint string, ttl time.Duration, log *slog.Logger) *Cache {
	if log == nil {
		log = slog.Default()
	}
	return &Cache{store: store, ttl: ttl, prefix: "charts:" + fingerprint + ":", log: log}
}

// Key hashes the canonical JSON form of a chart request.
func Key(c filter.Criteria, sel charts.Selection) string {
	b, _ := json.Marshal(struct {
		C filter.Criteria  `json:"c"`
		S charts.Selection `json:"s"`
	}{c, sel})
	return fmt.Sprintf("%016x", xxh3.Hash(b))
}

// Charts returns the payload for (c, sel), computing it with build on a
// miss. Store failures are logged and fall back to build.
func (cc *Cache) Charts(ctx context.Context, c filter.Criteria, sel charts.Selection, build func() charts.Set) (charts.Set, Outcome) {
	if cc == nil || cc.store == nil {
		return build(), Off
	}
	key := cc.prefix + Key(c, sel)

	if b, ok, err := cc.store.Get(ctx, key); err != nil {
		cc.log.WarnContext(ctx, "chart cache read failed", slog.String("key", key), slog.Any("error", err))
	} else if ok {
		var set charts.Set
		if err := json.Unmarshal(b, &set); err == nil {
			return set, Hit
		}
		cc.log.WarnContext(ctx, "chart cache entry unreadable", slog.String("key", key))
	}

	v, _, _ := cc.group.Do(key, func() (any, error) {
		set := build()
		b, err := json.Marshal(set)
		if err != nil {
			return set, nil
		}
		if err := cc.store.Set(context.WithoutCancel(ctx), key, b, cc.ttl); err != nil {
			cc.log.WarnContext(ctx, "chart cache write failed", slog.String("key", key), slog.Any("error", err))
		}
		return set, nil
	})
	return v.(charts.Set), Miss
}
