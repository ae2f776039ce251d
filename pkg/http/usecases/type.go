package usecases

import (
	"github.com/lintang-b-s/nearest-pointset/pkg/datastructure"
)

// NearestResult model info
//
//	@Description	nearest stored point for one query point.
type NearestResult struct {
	Query    datastructure.Point `json:"query" msgpack:"query"`       // query coordinate.
	Nearest  datastructure.Point `json:"nearest" msgpack:"nearest"`   // nearest stored point.
	Distance float64             `json:"distance" msgpack:"distance"` // euclidean distance between query and nearest.
}

// PointSetStats model info
//
//	@Description	size and implementation of the served point set.
type PointSetStats struct {
	Size           int    `json:"size" msgpack:"size"`
	Implementation string `json:"implementation" msgpack:"implementation"`
}
