package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/pack-odds/internal/pkg/clock"
)

func TestReal(t *testing.T) {
	before := time.Now()
	now := clock.New().Now()

	assert.False(t, now.Before(before.Truncate(time.Second)))
	assert.Equal(t, time.UTC, now.Location())
}
