package gridtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := buildConfig()
	assert.Equal(t, 2, cfg.Dims)
	assert.Equal(t, int64(4), cfg.gridMin())
	assert.Equal(t, int64(1024), cfg.gridMax())
}

func TestOptionsOverrideDefaults(t *testing.T) {
	cfg := buildConfig(WithDims(3), WithMaxEntries(5), WithGridExpMin(1), WithGridExpMax(8))
	assert.Equal(t, 3, cfg.Dims)
	assert.Equal(t, 5, cfg.MaxEntries)
	assert.Equal(t, int64(2), cfg.gridMin())
	assert.Equal(t, int64(256), cfg.gridMax())
}

func TestInvalidConfigPanics(t *testing.T) {
	assert.Panics(t, func() { buildConfig(WithDims(0)) })
	assert.Panics(t, func() { buildConfig(WithMaxEntries(0)) })
	assert.Panics(t, func() { buildConfig(WithGridExpMin(-1)) })
	assert.Panics(t, func() { buildConfig(WithGridExpMax(2), WithGridExpMin(2)) })
}
