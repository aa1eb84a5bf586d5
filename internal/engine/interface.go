// Package engine computes new-card probabilities for card packs
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/pack-odds/internal/engine Engine

import (
	"context"
)

// Engine turns a pack's card pool and the player's owned cards into the
// probability that opening the pack yields at least one new card
type Engine interface {
	// NewCardProbability evaluates one pool.
	// Returns errors.EmptyCardPool when the pool has no cards
	// Returns errors.InvalidArgument for a nil input or offering rate table,
	// or when both Owned and Missing are set
	NewCardProbability(ctx context.Context, input *NewCardProbabilityInput) (*NewCardProbabilityOutput, error)
}
