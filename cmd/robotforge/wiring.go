package main

import (
	"context"
	"log/slog"

	"github.com/alicebob/miniredis/v2"

	"github.com/KirkDiggler/robot-forge/internal/errors"
	"github.com/KirkDiggler/robot-forge/internal/orchestrators/workshop"
	"github.com/KirkDiggler/robot-forge/internal/pkg/clock"
	"github.com/KirkDiggler/robot-forge/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/robot-forge/internal/redis"
	assemblylocks "github.com/KirkDiggler/robot-forge/internal/repositories/assembly_locks"
	assemblyresults "github.com/KirkDiggler/robot-forge/internal/repositories/assembly_results"
)

// connectRedis returns a client for the configured topology, or for a
// throwaway in-process server when inProcess is set.
func connectRedis(ctx context.Context, inProcess bool) (redisclient.Client, func(), error) {
	if inProcess {
		mr, err := miniredis.Run()
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to start ephemeral redis")
		}
		client, err := redisclient.NewClient(mr.Addr(), cfg.RedisOptions())
		if err != nil {
			mr.Close()
			return nil, nil, errors.Wrap(err, "failed to connect to ephemeral redis")
		}
		slog.DebugContext(ctx, "using ephemeral redis", "addr", mr.Addr())
		return client, func() {
			_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
			mr.Close()
		}, nil
	}

	client, err := redisclient.Connect(redisclient.Mode(cfg.RedisMode), cfg.RedisAddrs, cfg.RedisOptions())
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis settings")
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
		return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is not reachable")
	}

	return client, func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}, nil
}

// newWorkshop wires the workshop against redis. Commands that never touch
// stored history pass inProcess to skip the real server.
func newWorkshop(ctx context.Context, inProcess bool) (workshop.Service, func(), error) {
	client, cleanup, err := connectRedis(ctx, inProcess || ephemeral)
	if err != nil {
		return nil, nil, err
	}

	results, err := assemblyresults.NewRedisRepository(&assemblyresults.Config{
		Client: client,
		TTL:    cfg.ResultTTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	locks, err := assemblylocks.NewRedisRepository(&assemblylocks.Config{
		Client:      client,
		IDGenerator: idgen.NewUUID("lock"),
		DefaultTTL:  cfg.LockTTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	svc, err := workshop.NewOrchestrator(&workshop.Config{
		Results:         results,
		Locks:           locks,
		IDGenerator:     idgen.NewUUID("asm"),
		Clock:           clock.New(),
		LockTTL:         cfg.LockTTL,
		BatchLimit:      cfg.BatchLimit,
		DefaultStrategy: cfg.DefaultStrategy,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return svc, cleanup, nil
}
