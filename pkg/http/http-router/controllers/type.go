package controllers

import (
	"context"

	"github.com/lintang-b-s/nearest-pointset/pkg/datastructure"
	"github.com/lintang-b-s/nearest-pointset/pkg/http/usecases"
)

type PointSetService interface {
	Nearest(x, y float64) (usecases.NearestResult, error)
	NearestBatch(ctx context.Context, queries []datastructure.Point) ([]usecases.NearestResult, error)
	Stats() usecases.PointSetStats
}
