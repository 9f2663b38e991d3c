package locking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"veredicto/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultLockKey = "veredicto:lock:fulfillment-sweep"

// SweepLock is a Redis distributed lock (SET NX PX + Lua safe release) that
// keeps the fulfillment recovery sweep single-flight across replicas. Without
// Redis configured the service runs single-replica and the lock is simply not
// constructed.

type SweepLock struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

var _ interfaces.ISweepLock = (*SweepLock)(nil)

// NewSweepLockFromEnv returns nil (no error) when REDIS_ADDR is unset.
func NewSweepLockFromEnv() (*SweepLock, error) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		log.Printf("[locking][sweep] REDIS_ADDR not set; sweep lock disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getenvIntDefault("REDIS_DB", 0),
	})
	return &SweepLock{
		rdb: rdb,
		key: getenvDefault("SWEEP_LOCK_KEY", defaultLockKey),
		ttl: getenvSecondsDefault("SWEEP_LOCK_TTL_SECONDS", 5*time.Minute),
	}, nil
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *SweepLock) Acquire(ctx context.Context) (func(), bool, error) {
	if l == nil || l.rdb == nil {
		return func() {}, true, nil
	}

	token, err := newToken()
	if err != nil {
		return nil, false, err
	}
	ok, err := l.rdb.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return func() {}, false, nil
	}

	release := func() {
		if _, err := releaseScript.Run(context.Background(), l.rdb, []string{l.key}, token).Int64(); err != nil {
			log.Printf("[locking][sweep] release failed key=%s err=%v", l.key, err)
		}
	}
	return release, true, nil
}

func newToken() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func getenvSecondsDefault(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return time.Duration(n) * time.Second
}
