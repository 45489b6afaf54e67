package memcache_fx

import (
	"go.uber.org/fx"

	"soundwave/internal/infra"
)

var Module = fx.Provide(infra.NewCacheStore)
