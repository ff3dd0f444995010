package config

import (
	"os"

	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

var config *Config

type Auth struct {
	SecretKey    string
	PublicKey    string
	AccessExpire int64 `json:",default=604800"`
}

type Config struct {
	service.ServiceConf
	ListenOn string
	State    string `json:",optional"`
	Auth     Auth
	Mongo    struct {
		URL string
		DB  string
	}
	Cache    cache.CacheConf
	Redis    *redis.RedisConf
	Log      LogConfig      `json:",optional"`
	Schedule ScheduleConfig `json:",optional"`
	Metrics  MetricsConfig  `json:",optional"`
}

type LogConfig struct {
	NoLogPaths []string `json:",optional"`
}

type ScheduleConfig struct {
	// LockExpire 课表写入锁过期时间(秒)
	LockExpire int `json:",default=5"`
}

type MetricsConfig struct {
	Addr string `json:",default=:9091"`
	Path string `json:",default=/metrics"`
}

func NewConfig() (*Config, error) {
	c := new(Config)

	path := os.Getenv("CONFIG_PATH")
	log.Info("NewConfig load config from path: %s", path)
	if err := conf.Load(path, c); err != nil {
		return nil, err
	}

	if err := c.SetUp(); err != nil {
		return nil, err
	}
	if c.Schedule.LockExpire <= 0 {
		c.Schedule.LockExpire = consts.DefaultLockExpire
	}
	if c.Auth.AccessExpire <= 0 {
		c.Auth.AccessExpire = consts.DefaultAccessExpire
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}

// SetConfig 测试中注入配置
func SetConfig(c *Config) {
	config = c
}
