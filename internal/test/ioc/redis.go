package testioc

import (
	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

var cache ecache.Cache

func InitCache() ecache.Cache {
	if cache != nil {
		return cache
	}
	addr := econf.GetString("redis.addr")
	if addr == "" {
		addr = "localhost:6379"
	}
	cmd := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	cache = &ecache.NamespaceCache{
		C:         eredis.NewCache(cmd),
		Namespace: "hireflow:",
	}
	return cache
}
