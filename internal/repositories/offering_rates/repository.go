// Package offeringrates provides the interface for loading offering rate tables
package offeringrates

//go:generate mockgen -destination=mock/mock_repository.go -package=offeringratesmock github.com/KirkDiggler/pack-odds/internal/repositories/offering_rates Repository

import (
	"context"

	"github.com/KirkDiggler/pack-odds/internal/entities"
)

// Repository defines the interface for reading offering rate tables
type Repository interface {
	// ListTables loads every offering rate table.
	// Returns errors.ConfigNotFound when the rates file is missing
	// Returns errors.ConfigParse for malformed TOML or rates outside [0, 1]
	// Returns errors.UnknownRarity for a rarity key outside the enumeration
	ListTables(ctx context.Context, input ListTablesInput) (*ListTablesOutput, error)
}

// ListTablesInput defines the input for listing tables
type ListTablesInput struct {
	// Empty for now, can be extended later
}

// ListTablesOutput defines the output for listing tables
type ListTablesOutput struct {
	// Tables keyed by table name
	Tables map[string]*entities.OfferingRateTable
}
