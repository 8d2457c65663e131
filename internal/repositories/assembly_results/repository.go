// Package assemblyresults stores finished assembly results so a workshop
// can show a robot's build history.
package assemblyresults

import (
	"context"
	"time"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=assemblyresultsmock github.com/KirkDiggler/robot-forge/internal/repositories/assembly_results Repository

// AssemblyRecord is the stored form of one assembly result
type AssemblyRecord struct {
	ID              string       `json:"id"`
	RobotID         string       `json:"robot_id"`
	Strategy        string       `json:"strategy"`
	Success         bool         `json:"success"`
	Failure         string       `json:"failure,omitempty"`
	Robot           *robot.Robot `json:"robot,omitempty"`
	Errors          []string     `json:"errors,omitempty"`
	Warnings        []string     `json:"warnings,omitempty"`
	Recommendations []string     `json:"recommendations,omitempty"`
	Optimizations   []string     `json:"optimizations,omitempty"`
	AssemblyTimeMs  int64        `json:"assembly_time_ms"`
	CreatedAt       time.Time    `json:"created_at"`
}

// CreateInput contains the record to store
type CreateInput struct {
	Record *AssemblyRecord
}

// CreateOutput contains the stored record
type CreateOutput struct {
	Record *AssemblyRecord
}

// GetInput identifies one stored record
type GetInput struct {
	ID string
}

// GetOutput contains the record found
type GetOutput struct {
	Record *AssemblyRecord
}

// ListByRobotInput selects all records for a robot
type ListByRobotInput struct {
	RobotID string
}

// ListByRobotOutput contains a robot's records, oldest first
type ListByRobotOutput struct {
	Records []*AssemblyRecord
}

// Repository defines storage for assembly results
type Repository interface {
	// Create stores a new record; an existing ID is ALREADY_EXISTS
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a record by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByRobot returns every record stored for a robot
	ListByRobot(ctx context.Context, input ListByRobotInput) (*ListByRobotOutput, error)
}
