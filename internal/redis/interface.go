package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the redis surface repositories are written against
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of a missing key
const Nil = redis.Nil

// NewScript compiles a Lua script for use with Client
func NewScript(src string) *redis.Script {
	return redis.NewScript(src)
}
