package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/KirkDiggler/pack-odds/internal/entities"
	"github.com/KirkDiggler/pack-odds/internal/errors"
)

const (
	// ExpansionsFile lists the expansions, relative to the data root
	ExpansionsFile = "expansions.toml"

	// CardsDir holds one <expansion id>.csv per expansion
	CardsDir = "cards"
)

var requiredColumns = []string{"name", "number", "rarity"}

type fileRepository struct {
	fsys fs.FS
}

// FileConfig contains configuration for the file-backed catalog repository.
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

// NewFile creates a catalog repository reading TOML and CSV files
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{
		fsys: cfg.FS,
	}, nil
}

// expansionRecord is the on-disk shape of one expansions.toml table
type expansionRecord struct {
	Name              string   `toml:"name"`
	Packs             []string `toml:"packs"`
	OfferingRateTable string   `toml:"offering_rate_table"`
}

func (r *fileRepository) ListExpansions(ctx context.Context, _ ListExpansionsInput) (*ListExpansionsOutput, error) {
	data, err := readFile(r.fsys, ExpansionsFile)
	if err != nil {
		return nil, err
	}

	var records map[string]expansionRecord
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&records); err != nil {
		return nil, errors.ConfigParse(err, ExpansionsFile)
	}

	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	expansions := make(map[string]*entities.Expansion, len(records))
	for _, id := range ids {
		rec := records[id]
		if rec.Name == "" {
			return nil, errors.ConfigParsef(ExpansionsFile, "expansion %s has no name", id).
				WithMeta("expansion_id", id)
		}
		if rec.OfferingRateTable == "" {
			return nil, errors.ConfigParsef(ExpansionsFile, "expansion %s has no offering_rate_table", id).
				WithMeta("expansion_id", id)
		}

		expansion := &entities.Expansion{
			ID:                id,
			Name:              rec.Name,
			PackNames:         rec.Packs,
			OfferingRateTable: rec.OfferingRateTable,
		}

		cards, err := r.loadCards(ctx, expansion)
		if err != nil {
			return nil, err
		}
		expansion.Cards = cards
		expansions[id] = expansion

		slog.DebugContext(ctx, "loaded expansion",
			"expansion_id", id,
			"packs", len(rec.Packs),
			"cards", len(cards))
	}

	return &ListExpansionsOutput{Expansions: expansions}, nil
}

// CardsPath returns the cards file path for an expansion
func CardsPath(expansionID string) string {
	return path.Join(CardsDir, expansionID+".csv")
}

func (r *fileRepository) loadCards(ctx context.Context, expansion *entities.Expansion) (map[int]*entities.Card, error) {
	p := CardsPath(expansion.ID)
	data, err := readFile(r.fsys, p)
	if err != nil {
		if errors.IsConfigNotFound(err) {
			return nil, errors.ConfigNotFoundf(p, "cards file for %q not found at %s", expansion.Name, p).
				WithMeta("expansion_id", expansion.ID)
		}
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.ConfigParsef(p, "cards file %s is empty", p)
		}
		return nil, errors.ConfigParse(err, p)
	}

	columns, err := columnIndex(header, p)
	if err != nil {
		return nil, err
	}
	packsCol, hasPacks := columns["packs"]

	declared := make(map[string]struct{}, len(expansion.PackNames))
	for _, pack := range expansion.PackNames {
		declared[pack] = struct{}{}
	}

	cards := make(map[int]*entities.Card)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.ConfigParse(err, p)
		}
		line, _ := reader.FieldPos(0)

		card, err := parseCard(record, columns, packsCol, hasPacks)
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d", p, line).
				WithMetaMap(map[string]interface{}{"path": p, "line": line})
		}
		if _, dup := cards[card.Number]; dup {
			return nil, errors.ConfigParsef(p, "%s line %d: duplicate card number %d", p, line, card.Number).
				WithMeta("line", line)
		}

		for pack := range card.Packs {
			if _, ok := declared[pack]; !ok {
				slog.DebugContext(ctx, "card references undeclared pack",
					"expansion_id", expansion.ID,
					"card", card.Number,
					"pack", pack)
			}
		}
		cards[card.Number] = card
	}

	return cards, nil
}

func columnIndex(header []string, p string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, errors.ConfigParsef(p, "cards file %s is missing the %q column", p, name)
		}
	}
	return columns, nil
}

func parseCard(record []string, columns map[string]int, packsCol int, hasPacks bool) (*entities.Card, error) {
	numberField := record[columns["number"]]
	number, err := strconv.Atoi(numberField)
	if err != nil {
		return nil, errors.Newf(errors.CodeConfigParse, "invalid card number %q", numberField)
	}
	if number <= 0 {
		return nil, errors.Newf(errors.CodeConfigParse, "card number must be positive, got %d", number)
	}

	rarity, err := entities.ParseRarity(record[columns["rarity"]])
	if err != nil {
		return nil, err
	}

	var packs []string
	if hasPacks {
		packs = entities.ParsePacks(record[packsCol])
	}

	return entities.NewCard(record[columns["name"]], number, rarity, packs...), nil
}

// readFile maps a missing file to ConfigNotFound
func readFile(fsys fs.FS, p string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.ConfigNotFoundf(p, "%s not found", p)
		}
		return nil, errors.Wrapf(err, "failed to read %s", p)
	}
	return data, nil
}
