package usecases

import (
	"context"
	"errors"
	"math"

	"github.com/lintang-b-s/nearest-pointset/pkg"
	"github.com/lintang-b-s/nearest-pointset/pkg/concurrent"
	"github.com/lintang-b-s/nearest-pointset/pkg/datastructure"

	"go.uber.org/zap"
)

const (
	IMPL_KDTREE = "kdtree"
	IMPL_NAIVE  = "naive"
)

type PointSetService struct {
	log          *zap.Logger
	pointSet     datastructure.PointSet
	impl         string
	batchWorkers int
}

func New(log *zap.Logger, pointSet datastructure.PointSet, impl string, batchWorkers int) *PointSetService {
	if batchWorkers < 1 {
		batchWorkers = 1
	}
	return &PointSetService{
		log:          log,
		pointSet:     pointSet,
		impl:         impl,
		batchWorkers: batchWorkers,
	}
}

func (s *PointSetService) Nearest(x, y float64) (NearestResult, error) {
	if !isFinite(x) || !isFinite(y) {
		return NearestResult{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "query coordinate (%f, %f) must be finite", x, y)
	}

	nearest, err := s.pointSet.Nearest(x, y)
	if err != nil {
		if errors.Is(err, datastructure.ErrEmptyPointSet) {
			return NearestResult{}, pkg.WrapErrorf(err, pkg.ErrNotFound, "no point to query")
		}
		return NearestResult{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "nearest (%f, %f)", x, y)
	}

	query := datastructure.NewPoint(x, y)
	return NearestResult{
		Query:    query,
		Nearest:  nearest,
		Distance: nearest.Distance(query),
	}, nil
}

type batchJob struct {
	idx   int
	query datastructure.Point
}

type batchResult struct {
	idx    int
	result NearestResult
	err    error
}

// NearestBatch answers every query concurrently; point sets are read-only so no locking is needed.
// Results keep the order of queries. On the first error or on cancellation the remaining
// queries are skipped and NearestBatch returns once the workers have stopped.
func (s *PointSetService) NearestBatch(ctx context.Context, queries []datastructure.Point) ([]NearestResult, error) {
	if len(queries) == 0 {
		return []NearestResult{}, nil
	}

	batchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	worker := concurrent.NewBackgroundWorker(s.batchWorkers, len(queries), func(job batchJob) batchResult {
		if err := batchCtx.Err(); err != nil {
			return batchResult{idx: job.idx, err: pkg.WrapErrorf(err, pkg.ErrInternalServerError, "nearest batch cancelled")}
		}
		res, err := s.Nearest(job.query.X, job.query.Y)
		return batchResult{idx: job.idx, result: res, err: err}
	})
	worker.Start()

	for i, q := range queries {
		worker.TriggerProcessing(batchJob{idx: i, query: q})
	}
	go worker.Close()

	results := make([]NearestResult, len(queries))
	for received := 0; received < len(queries); received++ {
		select {
		case <-ctx.Done():
			s.log.Warn("nearest batch cancelled", zap.Int("answered", received), zap.Int("queries", len(queries)))
			worker.Close()
			return nil, pkg.WrapErrorf(ctx.Err(), pkg.ErrInternalServerError, "nearest batch cancelled")
		case res := <-worker.Results():
			if res.err != nil {
				cancel()
				worker.Close()
				return nil, res.err
			}
			results[res.idx] = res.result
		}
	}

	s.log.Debug("nearest batch done", zap.Int("queries", len(queries)), zap.Int("workers", s.batchWorkers))
	return results, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (s *PointSetService) Stats() PointSetStats {
	return PointSetStats{
		Size:           s.pointSet.Size(),
		Implementation: s.impl,
	}
}
