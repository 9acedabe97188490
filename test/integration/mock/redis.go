package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client

// NewRedis starts an in-process miniredis server and returns a client
// connected to it. The connection is reused across scenarios; call
// ClearRedis between them.
func NewRedis() *redis.Client {
	redisConnOnce.Do(func() {
		miniRedis, err := miniredis.Run()
		if err != nil {
			panic(err)
		}

		redisConn = redis.NewClient(&redis.Options{
			Addr: miniRedis.Addr(),
		})
	})

	return redisConn
}

// ClearRedis removes all keys so scenarios start from an empty store.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
