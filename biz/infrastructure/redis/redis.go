package redis

import (
	"sync"

	"school-hub/biz/infrastructure/config"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

// Redis连接管理
// 提供统一的Redis客户端实例

var instance *redis.Redis
var once sync.Once

// GetRedis 构造一个Redis客户端, 未配置 Redis 时返回 nil
func GetRedis(config *config.Config) *redis.Redis {
	once.Do(func() {
		if config.Redis == nil {
			return
		}
		instance = redis.MustNewRedis(*config.Redis)
	})
	return instance
}
