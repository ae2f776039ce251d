package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/lintang-b-s/nearest-pointset/pkg/datastructure"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadYAML(t *testing.T, yaml string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(yaml)))
	return Load(v)
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadYAML(t, "")
		require.NoError(t, err)
		assert.Equal(t, "kdtree", cfg.PointSet.Impl)
		assert.Empty(t, cfg.PointSet.Points)
		assert.Equal(t, 4, cfg.PointSet.BatchWorkers)
		assert.Equal(t, uint64(1), cfg.PointSet.RandomSeed)
		assert.Equal(t, 6060, cfg.API.Port)
		assert.Equal(t, 30*time.Second, cfg.API.Timeout)
		assert.NoError(t, cfg.Log.Validate())
	})

	t.Run("points and impl", func(t *testing.T) {
		cfg, err := loadYAML(t, `
pointset_impl: Naive
pointset_points:
  - [2, 3]
  - [1.5, -5]
batch_workers: 8
`)
		require.NoError(t, err)
		assert.Equal(t, "naive", cfg.PointSet.Impl)
		assert.Equal(t, []datastructure.Point{
			datastructure.NewPoint(2, 3), datastructure.NewPoint(1.5, -5),
		}, cfg.PointSet.Points)
		assert.Equal(t, 8, cfg.PointSet.BatchWorkers)
	})

	t.Run("points from environment", func(t *testing.T) {
		t.Setenv("POINTSET_POINTS", "[[1, 2], [3.5, -4]]")
		v := viper.New()
		v.AutomaticEnv()

		cfg, err := Load(v)
		require.NoError(t, err)
		assert.Equal(t, []datastructure.Point{
			datastructure.NewPoint(1, 2), datastructure.NewPoint(3.5, -4),
		}, cfg.PointSet.Points)
	})

	t.Run("malformed points from environment", func(t *testing.T) {
		t.Setenv("POINTSET_POINTS", "[[1, 2], [3")
		v := viper.New()
		v.AutomaticEnv()

		_, err := Load(v)
		assert.Error(t, err)
	})

	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown impl", yaml: "pointset_impl: quadtree"},
		{name: "pair with three coordinates", yaml: "pointset_points: [[1, 2, 3]]"},
		{name: "not a number", yaml: "pointset_points: [[1, a]]"},
		{name: "points not a list", yaml: "pointset_points: 5"},
		{name: "negative random count", yaml: "pointset_random_count: -1"},
		{name: "empty random range", yaml: "pointset_random_min: 5\npointset_random_max: 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadYAML(t, tt.yaml)
			assert.Error(t, err)
		})
	}
}
