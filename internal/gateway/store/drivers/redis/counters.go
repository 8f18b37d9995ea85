package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrScript bumps the windowed counter and arms its TTL in one atomic step.
// A separate INCR then EXPIRE pair could leave the key immortal if the
// process died between the two, pinning the window open forever.
const incrScript = `
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`

var incrLua = redis.NewScript(incrScript)

type countersRepo struct {
	rdb *redis.Client
}

// Increment bumps the windowed counter and returns the new count. The TTL is
// only set when INCR created the key, so the window runs from the first
// request rather than sliding.
func (r *countersRepo) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	return incrLua.Run(ctx, r.rdb,
		[]string{rateLimitKey(key)},
		window.Milliseconds(),
	).Int64()
}
