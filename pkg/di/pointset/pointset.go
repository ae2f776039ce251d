package pointset_di

import (
	"fmt"
	"time"

	"github.com/lintang-b-s/nearest-pointset/pkg/datastructure"
	"github.com/lintang-b-s/nearest-pointset/pkg/di/config"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// New builds the served point set from the configured points plus POINTSET_RANDOM_COUNT seeded random points.
func New(cfg *config.Config, log *zap.Logger) (datastructure.PointSet, error) {
	psCfg := cfg.PointSet

	points := make([]datastructure.Point, 0, len(psCfg.Points)+psCfg.RandomCount)
	points = append(points, psCfg.Points...)
	points = append(points, RandomPoints(psCfg.RandomSeed, psCfg.RandomCount, psCfg.RandomMin, psCfg.RandomMax)...)

	start := time.Now()
	var (
		ps  datastructure.PointSet
		err error
	)
	switch psCfg.Impl {
	case "naive":
		ps, err = datastructure.NewNaivePointSet(points)
	default:
		ps, err = datastructure.NewKDTreePointSet(points)
	}
	if err != nil {
		return nil, fmt.Errorf("build %s point set: %w", psCfg.Impl, err)
	}

	fields := []zap.Field{
		zap.String("impl", psCfg.Impl),
		zap.Int("points", ps.Size()),
		zap.Duration("build_time", time.Since(start)),
	}
	if kd, ok := ps.(*datastructure.KDTreePointSet); ok {
		fields = append(fields, zap.Int("height", kd.Height()))
	}
	log.Info("point set built", fields...)

	return ps, nil
}

func RandomPoints(seed uint64, n int, lo, hi float64) []datastructure.Point {
	rnd := rand.New(rand.NewSource(seed))
	points := make([]datastructure.Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, datastructure.NewPoint(lo+rnd.Float64()*(hi-lo), lo+rnd.Float64()*(hi-lo)))
	}
	return points
}
