// Package catalog provides the interface for loading the card catalog
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/pack-odds/internal/repositories/catalog Repository

import (
	"context"

	"github.com/KirkDiggler/pack-odds/internal/entities"
)

// Repository defines the interface for reading the card catalog
type Repository interface {
	// ListExpansions loads every expansion with its cards.
	// Loading is all-or-nothing: any failure returns no expansions.
	// Returns errors.ConfigNotFound when the expansions file or a cards file is missing
	// Returns errors.ConfigParse for malformed TOML/CSV or duplicate card numbers
	// Returns errors.UnknownRarity for a rarity literal outside the enumeration
	ListExpansions(ctx context.Context, input ListExpansionsInput) (*ListExpansionsOutput, error)
}

// ListExpansionsInput defines the input for listing expansions
type ListExpansionsInput struct {
	// Empty for now, can be extended later
}

// ListExpansionsOutput defines the output for listing expansions
type ListExpansionsOutput struct {
	// Expansions keyed by expansion ID
	Expansions map[string]*entities.Expansion
}
