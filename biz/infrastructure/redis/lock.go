package redis

import (
	"context"
	"fmt"
	"sync"

	"school-hub/biz/infrastructure/config"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

// Locker 互斥执行同一个 key 下的检查与写入
type Locker interface {
	// Lock 获取失败返回 consts.ErrScheduleBusy, 不重试
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// ScheduleLockKey 课表按 (班级, 星期) 加锁
func ScheduleLockKey(classID, day string) string {
	return fmt.Sprintf("%s:%s:%s", consts.ScheduleLockPrefix, classID, day)
}

// NewLocker 配置了 Redis 时使用分布式锁, 否则退化为进程内锁
func NewLocker(config *config.Config) Locker {
	rds := GetRedis(config)
	if rds == nil {
		log.Info("NewLocker redis not configured, using local locker")
		return NewLocalLocker()
	}
	return &RedisLocker{rds: rds, expire: config.Schedule.LockExpire}
}

type RedisLocker struct {
	rds    *redis.Redis
	expire int
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	lk := redis.NewRedisLock(l.rds, key)
	lk.SetExpire(l.expire)
	ok, err := lk.AcquireCtx(ctx)
	if err != nil {
		log.CtxError(ctx, "acquire lock %s fail, err=%v", key, err)
		return nil, err
	}
	if !ok {
		return nil, consts.ErrScheduleBusy
	}
	return func() {
		if _, err := lk.ReleaseCtx(context.Background()); err != nil {
			log.Error("release lock %s fail, err=%v", key, err)
		}
	}, nil
}

// LocalLocker 单实例部署和测试使用
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[string]bool)}
}

func (l *LocalLocker) Lock(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] {
		return nil, consts.ErrScheduleBusy
	}
	l.held[key] = true
	return func() {
		l.mu.Lock()
		delete(l.held, key)
		l.mu.Unlock()
	}, nil
}
