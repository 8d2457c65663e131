// Package assemblylocks guards robots against concurrent assembly. Each
// robot can have at most one holder; the lock expires on its own if the
// holder dies.
package assemblylocks

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=assemblylocksmock github.com/KirkDiggler/robot-forge/internal/repositories/assembly_locks Repository

// AcquireInput names the entity to lock
type AcquireInput struct {
	Entity core.Entity
	// TTL overrides the repository default when set
	TTL time.Duration
}

// AcquireOutput carries the token needed to release the lock
type AcquireOutput struct {
	Token     string
	ExpiresAt time.Time
}

// ReleaseInput identifies the lock and proves ownership
type ReleaseInput struct {
	Entity core.Entity
	Token  string
}

// Repository defines the lock operations
type Repository interface {
	// Acquire takes the lock, failing with ABORTED if it is already held
	Acquire(ctx context.Context, input AcquireInput) (*AcquireOutput, error)

	// Release frees the lock if the token still owns it
	Release(ctx context.Context, input ReleaseInput) error
}
