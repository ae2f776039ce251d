package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lintang-b-s/nearest-pointset/pkg/datastructure"
	logConfig "github.com/lintang-b-s/nearest-pointset/pkg/logger/config"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type PointSetConfig struct {
	Impl         string
	Points       []datastructure.Point
	RandomCount  int
	RandomSeed   uint64
	RandomMin    float64
	RandomMax    float64
	BatchWorkers int
}

type Config struct {
	PointSet PointSetConfig
	Log      logConfig.Configuration
	API      APIConfig
}

type APIConfig struct {
	Port    int
	Timeout time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("POINTSET_IMPL", "kdtree")
	v.SetDefault("POINTSET_RANDOM_COUNT", 0)
	v.SetDefault("POINTSET_RANDOM_SEED", 1)
	v.SetDefault("POINTSET_RANDOM_MIN", 0.0)
	v.SetDefault("POINTSET_RANDOM_MAX", 1000.0)
	v.SetDefault("BATCH_WORKERS", 4)
	v.SetDefault("LOG_LEVEL", logConfig.INFO_LEVEL)
	v.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
	v.SetDefault("API_PORT", 6060)
	v.SetDefault("API_TIMEOUT", "30s")
}

// New reads config.yaml from the working directory if present; environment variables override it.
func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}

	return Load(viper.GetViper())
}

func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	points, err := parsePoints(v.Get("POINTSET_POINTS"))
	if err != nil {
		return nil, err
	}

	cfg := PointSetConfig{
		Impl:         strings.ToLower(v.GetString("POINTSET_IMPL")),
		Points:       points,
		RandomCount:  v.GetInt("POINTSET_RANDOM_COUNT"),
		RandomSeed:   v.GetUint64("POINTSET_RANDOM_SEED"),
		RandomMin:    v.GetFloat64("POINTSET_RANDOM_MIN"),
		RandomMax:    v.GetFloat64("POINTSET_RANDOM_MAX"),
		BatchWorkers: v.GetInt("BATCH_WORKERS"),
	}

	if cfg.Impl != "kdtree" && cfg.Impl != "naive" {
		return nil, fmt.Errorf("POINTSET_IMPL must be kdtree or naive, got %q", cfg.Impl)
	}
	if cfg.RandomCount < 0 {
		return nil, fmt.Errorf("POINTSET_RANDOM_COUNT must not be negative, got %d", cfg.RandomCount)
	}
	if cfg.RandomMax <= cfg.RandomMin {
		return nil, fmt.Errorf("POINTSET_RANDOM_MAX (%f) must be greater than POINTSET_RANDOM_MIN (%f)", cfg.RandomMax, cfg.RandomMin)
	}

	return &Config{
		PointSet: cfg,
		Log: logConfig.Configuration{
			Level:      v.GetInt("LOG_LEVEL"),
			TimeFormat: v.GetString("LOG_TIME_FORMAT"),
		},
		API: APIConfig{
			Port:    v.GetInt("API_PORT"),
			Timeout: v.GetDuration("API_TIMEOUT"),
		},
	}, nil
}

// parsePoints accepts the yaml form [[x, y], ...], or the same list written as a
// single string, which is how it arrives from POINTSET_POINTS in the environment.
func parsePoints(raw interface{}) ([]datastructure.Point, error) {
	if raw == nil {
		return nil, nil
	}

	if str, ok := raw.(string); ok {
		if strings.TrimSpace(str) == "" {
			return nil, nil
		}
		var decoded interface{}
		if err := yaml.Unmarshal([]byte(str), &decoded); err != nil {
			return nil, fmt.Errorf("POINTSET_POINTS: %w", err)
		}
		raw = decoded
	}

	pairs, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("POINTSET_POINTS must be a list of [x, y] pairs")
	}

	points := make([]datastructure.Point, 0, len(pairs))
	for i, pair := range pairs {
		coords, ok := pair.([]interface{})
		if !ok || len(coords) != 2 {
			return nil, fmt.Errorf("POINTSET_POINTS[%d] must be an [x, y] pair", i)
		}
		x, err := cast.ToFloat64E(coords[0])
		if err != nil {
			return nil, fmt.Errorf("POINTSET_POINTS[%d].x: %w", i, err)
		}
		y, err := cast.ToFloat64E(coords[1])
		if err != nil {
			return nil, fmt.Errorf("POINTSET_POINTS[%d].y: %w", i, err)
		}
		points = append(points, datastructure.NewPoint(x, y))
	}
	return points, nil
}
