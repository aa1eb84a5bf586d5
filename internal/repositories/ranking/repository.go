// Package ranking provides the interface for publishing ranking snapshots
package ranking

//go:generate mockgen -destination=mock/mock_repository.go -package=rankingmock github.com/KirkDiggler/pack-odds/internal/repositories/ranking Repository

import (
	"context"

	"github.com/KirkDiggler/pack-odds/internal/entities"
)

// Repository defines the interface for ranking snapshot persistence
type Repository interface {
	// Save stores a snapshot, its score index, and its position in history.
	// Returns errors.InvalidArgument when the snapshot or its ID is missing
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a snapshot by ID
	// Returns errors.NotFound if no snapshot has that ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetTop returns the highest scoring packs of a snapshot
	GetTop(ctx context.Context, input GetTopInput) (*GetTopOutput, error)

	// List returns snapshots newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// SaveInput defines the input for saving a snapshot
type SaveInput struct {
	Snapshot *entities.RankingSnapshot
}

// SaveOutput defines the output for saving a snapshot
type SaveOutput struct {
	ID string
}

// GetInput defines the input for getting a snapshot
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a snapshot
type GetOutput struct {
	Snapshot *entities.RankingSnapshot
}

// GetTopInput defines the input for reading the best packs of a snapshot
type GetTopInput struct {
	ID    string
	Limit int // 0 returns every pack
}

// ScoredPack is a pack key and its new-card probability
type ScoredPack struct {
	Key         string
	Probability float64
}

// GetTopOutput defines the output for reading the best packs of a snapshot
type GetTopOutput struct {
	Packs []ScoredPack
}

// ListInput defines the input for listing snapshots
type ListInput struct {
	Limit int // 0 returns every snapshot
}

// ListOutput defines the output for listing snapshots
type ListOutput struct {
	Snapshots []*entities.RankingSnapshot
}
