package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pack-odds/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	t.Run("with prefix", func(t *testing.T) {
		gen := idgen.NewSequential("rank")
		assert.Equal(t, "rank_1", gen.Generate())
		assert.Equal(t, "rank_2", gen.Generate())
	})

	t.Run("without prefix", func(t *testing.T) {
		gen := idgen.NewSequential("")
		assert.Equal(t, "1", gen.Generate())
	})
}

func TestUUIDGenerator(t *testing.T) {
	t.Run("with prefix", func(t *testing.T) {
		id := idgen.NewUUID("rank").Generate()
		require.True(t, strings.HasPrefix(id, "rank_"))

		_, err := uuid.Parse(strings.TrimPrefix(id, "rank_"))
		assert.NoError(t, err)
	})

	t.Run("unique", func(t *testing.T) {
		gen := idgen.NewUUID("")
		assert.NotEqual(t, gen.Generate(), gen.Generate())
	})
}
