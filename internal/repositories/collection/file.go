package collection

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/KirkDiggler/pack-odds/internal/entities"
	"github.com/KirkDiggler/pack-odds/internal/errors"
)

const (
	// Error messages
	errPathEmpty = "collection path cannot be empty"

	// maxRangeSpan bounds how many card numbers one range may expand to
	maxRangeSpan = 10000
)

type fileRepository struct {
	readFile func(string) ([]byte, error)
}

// FileConfig contains configuration for the file-backed collection repository.
type FileConfig struct {
	// ReadFile defaults to os.ReadFile
	ReadFile func(name string) ([]byte, error)
}

// NewFile creates a collection repository reading TOML files.
// A nil config reads from the local filesystem.
func NewFile(cfg *FileConfig) (Repository, error) {
	readFile := os.ReadFile
	if cfg != nil && cfg.ReadFile != nil {
		readFile = cfg.ReadFile
	}

	return &fileRepository{
		readFile: readFile,
	}, nil
}

// Get reads a TOML file with one key per expansion ID. Each value is an
// array of card numbers or "first-last" range strings:
//
//	genetic_apex = [1, 2, "10-14", 33]
func (r *fileRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Path == "" {
		return nil, errors.InvalidArgument(errPathEmpty)
	}

	data, err := r.readFile(input.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.ConfigNotFoundf(input.Path, "collection file %s not found", input.Path)
		}
		return nil, errors.Wrapf(err, "failed to read collection %s", input.Path)
	}

	var records map[string][]interface{}
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&records); err != nil {
		return nil, errors.ConfigParse(err, input.Path)
	}

	collection := make(entities.Collection, len(records))
	for expansionID, values := range records {
		owned := entities.NewOwnedSet()
		for _, v := range values {
			if err := addOwned(owned, v); err != nil {
				return nil, errors.Wrapf(err, "%s: expansion %s", input.Path, expansionID).
					WithMetaMap(map[string]interface{}{"path": input.Path, "expansion_id": expansionID})
			}
		}
		collection[expansionID] = owned

		slog.DebugContext(ctx, "loaded collection expansion",
			"expansion_id", expansionID,
			"owned", len(owned))
	}

	return &GetOutput{Collection: collection}, nil
}

func addOwned(owned entities.OwnedSet, v interface{}) error {
	switch n := v.(type) {
	case int64:
		if n <= 0 {
			return errors.Newf(errors.CodeConfigParse, "card number must be positive, got %d", n)
		}
		owned[int(n)] = struct{}{}
		return nil
	case string:
		first, last, err := parseRange(n)
		if err != nil {
			return err
		}
		for i := first; i <= last; i++ {
			owned[i] = struct{}{}
		}
		return nil
	default:
		return errors.Newf(errors.CodeConfigParse, "card numbers must be integers or ranges, got %v", v)
	}
}

// parseRange parses "first-last" with 0 < first <= last and a span of at
// most maxRangeSpan numbers
func parseRange(s string) (int, int, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, errors.Newf(errors.CodeConfigParse, "invalid card range %q, expected first-last", s)
	}
	first, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, errors.Newf(errors.CodeConfigParse, "invalid card range %q", s)
	}
	last, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, errors.Newf(errors.CodeConfigParse, "invalid card range %q", s)
	}
	if first <= 0 || last < first {
		return 0, 0, errors.Newf(errors.CodeConfigParse, "invalid card range %q", s)
	}
	if last-first >= maxRangeSpan {
		return 0, 0, errors.Newf(errors.CodeConfigParse, "card range %q spans more than %d numbers", s, maxRangeSpan)
	}
	return first, last, nil
}
