package assemblylocks

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/errors"
	"github.com/KirkDiggler/robot-forge/internal/pkg/clock"
	"github.com/KirkDiggler/robot-forge/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/robot-forge/internal/redis"
)

const (
	lockKeyPrefix = "assembly_lock:"
	defaultTTL    = 30 * time.Second

	errEntityNil     = "entity cannot be nil"
	errEntityIDEmpty = "entity ID cannot be empty"
	errTokenEmpty    = "token cannot be empty"
)

// Deletes the key only while it still holds the caller's token.
var releaseScript = redisclient.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Config holds the configuration for the Redis lock repository
type Config struct {
	Client      redisclient.Client
	IDGenerator idgen.Generator
	Clock       clock.Clock
	DefaultTTL  time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.DefaultTTL < 0 {
		vb.Field("DefaultTTL", "cannot be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	idGen  idgen.Generator
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed lock repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.DefaultTTL
	if ttl == 0 {
		ttl = defaultTTL
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{client: cfg.Client, idGen: cfg.IDGenerator, clock: c, ttl: ttl}, nil
}

var _ Repository = (*redisRepository)(nil)

func lockKey(entity core.Entity) string {
	return lockKeyPrefix + entity.GetID()
}

func checkEntity(entity core.Entity) error {
	if entity.GetID() == "" {
		return errors.InvalidArgument(errEntityIDEmpty)
	}
	if entity.GetType() != robot.EntityTypeRobot {
		return errors.InvalidArgumentf("cannot lock entity of type %q", entity.GetType())
	}
	return nil
}

func (r *redisRepository) Acquire(ctx context.Context, input AcquireInput) (*AcquireOutput, error) {
	if input.Entity == nil {
		return nil, errors.InvalidArgument(errEntityNil)
	}
	if err := checkEntity(input.Entity); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}

	token := r.idGen.Generate()
	key := lockKey(input.Entity)

	ok, err := r.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to acquire lock %s", key)
	}
	if !ok {
		return nil, errors.Abortedf("assembly already in progress for robot %s", input.Entity.GetID()).
			WithMeta("robot_id", input.Entity.GetID())
	}

	slog.DebugContext(ctx, "acquired assembly lock",
		"robot_id", input.Entity.GetID(),
		"ttl", ttl)

	return &AcquireOutput{Token: token, ExpiresAt: r.clock.Now().Add(ttl)}, nil
}

func (r *redisRepository) Release(ctx context.Context, input ReleaseInput) error {
	if input.Entity == nil {
		return errors.InvalidArgument(errEntityNil)
	}
	if err := checkEntity(input.Entity); err != nil {
		return err
	}
	if input.Token == "" {
		return errors.InvalidArgument(errTokenEmpty)
	}

	key := lockKey(input.Entity)
	deleted, err := releaseScript.Run(ctx, r.client, []string{key}, input.Token).Int64()
	if err != nil {
		return errors.Wrapf(err, "failed to release lock %s", key)
	}
	if deleted == 0 {
		return errors.FailedPreconditionf("lock for robot %s is not held by this token", input.Entity.GetID())
	}

	slog.DebugContext(ctx, "released assembly lock", "robot_id", input.Entity.GetID())
	return nil
}
