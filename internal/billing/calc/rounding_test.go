package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 2106.80, RoundCurrency(2106.795))
	assert.Equal(t, 2106.79, RoundCurrency(2106.794))
	assert.Equal(t, 0.0, RoundCurrency(-5))
	assert.Equal(t, 0.0, RoundCurrency(0))
	assert.Equal(t, 0.0, RoundCurrency(math.NaN()))
	assert.Equal(t, 0.0, RoundCurrency(math.Inf(1)))
	assert.Equal(t, 100.0, RoundCurrency(100))
}

func TestRoundGSTWhole(t *testing.T) {
	assert.Equal(t, 394.0, RoundGSTWhole(393.5))
	assert.Equal(t, 393.0, RoundGSTWhole(393.2))
	assert.Equal(t, 0.0, RoundGSTWhole(0))
	assert.Equal(t, 0.0, RoundGSTWhole(-12.4))
	assert.Equal(t, 0.0, RoundGSTWhole(math.NaN()))
	assert.Equal(t, 0.0, RoundGSTWhole(math.Inf(-1)))
	assert.Equal(t, 300.0, RoundGSTWhole(300))
}

func TestRoundWhole(t *testing.T) {
	assert.Equal(t, 2107.0, RoundWhole(2106.5))
	assert.Equal(t, 2106.0, RoundWhole(2106.4))
	assert.Equal(t, 0.0, RoundWhole(-1))
	assert.Equal(t, 0.0, RoundWhole(math.NaN()))
	assert.Equal(t, 2000.0, RoundWhole(2000))
}
