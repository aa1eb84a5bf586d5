package offeringrates

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"

	"github.com/pelletier/go-toml/v2"

	"github.com/KirkDiggler/pack-odds/internal/entities"
	"github.com/KirkDiggler/pack-odds/internal/errors"
)

// RatesFile holds the tables, relative to the data root
const RatesFile = "offering_rates.toml"

type fileRepository struct {
	fsys fs.FS
}

// FileConfig contains configuration for the file-backed offering rate repository.
type FileConfig struct {
	// FS is rooted at the data directory
	FS fs.FS
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.FS == nil {
		return errors.InvalidArgument("filesystem cannot be nil")
	}
	return nil
}

// NewFile creates an offering rate repository reading a TOML file
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{
		fsys: cfg.FS,
	}, nil
}

// tableRecord is the on-disk shape of one table, keyed by rarity literal
type tableRecord struct {
	FourthCard map[string]float64 `toml:"fourth_card"`
	FifthCard  map[string]float64 `toml:"fifth_card"`
}

func (r *fileRepository) ListTables(ctx context.Context, _ ListTablesInput) (*ListTablesOutput, error) {
	data, err := fs.ReadFile(r.fsys, RatesFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.ConfigNotFoundf(RatesFile, "%s not found", RatesFile)
		}
		return nil, errors.Wrapf(err, "failed to read %s", RatesFile)
	}

	var records map[string]tableRecord
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&records); err != nil {
		return nil, errors.ConfigParse(err, RatesFile)
	}

	tables := make(map[string]*entities.OfferingRateTable, len(records))
	for name, rec := range records {
		fourth, err := parseSlot(name, "fourth_card", rec.FourthCard)
		if err != nil {
			return nil, err
		}
		fifth, err := parseSlot(name, "fifth_card", rec.FifthCard)
		if err != nil {
			return nil, err
		}
		tables[name] = entities.NewOfferingRateTable(name, fourth, fifth)
	}

	slog.DebugContext(ctx, "loaded offering rate tables", "tables", len(tables))

	return &ListTablesOutput{Tables: tables}, nil
}

func parseSlot(table, slot string, raw map[string]float64) (map[entities.Rarity]float64, error) {
	rates := make(map[entities.Rarity]float64, len(raw))
	for literal, rate := range raw {
		rarity, err := entities.ParseRarity(literal)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: table %s %s", RatesFile, table, slot).
				WithMetaMap(map[string]interface{}{"path": RatesFile, "table": table})
		}
		if rate < 0 || rate > 1 {
			return nil, errors.ConfigParsef(RatesFile, "table %s %s rate for %s must be within [0, 1], got %g",
				table, slot, literal, rate).
				WithMeta("table", table)
		}
		rates[rarity] = rate
	}
	return rates, nil
}
