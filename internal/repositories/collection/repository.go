// Package collection provides the interface for loading a player's owned cards
package collection

import (
	"context"

	"github.com/KirkDiggler/pack-odds/internal/entities"
)

// Repository defines the interface for reading a collection
type Repository interface {
	// Get loads the collection stored at Path.
	// Returns errors.InvalidArgument for an empty path
	// Returns errors.ConfigNotFound when the file is missing
	// Returns errors.ConfigParse for malformed TOML or invalid card numbers
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// GetInput defines the input for getting a collection
type GetInput struct {
	Path string
}

// GetOutput defines the output for getting a collection
type GetOutput struct {
	Collection entities.Collection
}
