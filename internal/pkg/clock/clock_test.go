package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-sheetfill/internal/pkg/clock"
)

func TestFromEpoch(t *testing.T) {
	fixed := clock.FromEpoch(1760486400)
	assert.Equal(t, time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC), fixed.Now())

	_, isReal := clock.FromEpoch(0).(*clock.Real)
	assert.True(t, isReal)
}
