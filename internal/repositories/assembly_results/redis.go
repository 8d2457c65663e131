package assemblyresults

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/KirkDiggler/robot-forge/internal/errors"
	redisclient "github.com/KirkDiggler/robot-forge/internal/redis"
)

const (
	resultKeyPrefix  = "assembly_result:"
	robotIndexPrefix = "assembly_result:robot:"

	errRecordNil     = "record cannot be nil"
	errRecordIDEmpty = "record ID cannot be empty"
	errRobotIDEmpty  = "robot ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	// TTL expires stored results; zero keeps them forever.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed assembly result store
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client, ttl: cfg.TTL}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}
	if input.Record.RobotID == "" {
		return nil, errors.InvalidArgument(errRobotIDEmpty)
	}

	key := resultKeyPrefix + input.Record.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("assembly result %s already exists", input.Record.ID)
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal assembly result")
	}

	indexKey := robotIndexPrefix + input.Record.RobotID

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, r.ttl)
	pipe.SAdd(ctx, indexKey, input.Record.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store assembly result")
	}

	slog.DebugContext(ctx, "stored assembly result",
		"result_id", input.Record.ID,
		"robot_id", input.Record.RobotID,
		"success", input.Record.Success)

	return &CreateOutput{Record: input.Record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	raw, err := r.client.Get(ctx, resultKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("assembly result %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get assembly result")
	}

	var record AssemblyRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal assembly result")
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) ListByRobot(ctx context.Context, input ListByRobotInput) (*ListByRobotOutput, error) {
	if input.RobotID == "" {
		return nil, errors.InvalidArgument(errRobotIDEmpty)
	}

	indexKey := robotIndexPrefix + input.RobotID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read index %s", indexKey)
	}

	records := make([]*AssemblyRecord, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "assembly result expired, cleaning up index",
					"result_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get assembly result %s", id)
		}
		records = append(records, out.Record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})

	return &ListByRobotOutput{Records: records}, nil
}
