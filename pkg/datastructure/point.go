package datastructure

import (
	"errors"
	"math"
	"strconv"
)

var (
	ErrEmptyPoints   = errors.New("points must not be nil or empty")
	ErrEmptyPointSet = errors.New("point set does not contain any point")
)

// Point model info
// @Description 2-D coordinate stored in a point set.
type Point struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// DistanceSquaredTo returns (p.X-x)^2 + (p.Y-y)^2.
func (p Point) DistanceSquaredTo(x, y float64) float64 {
	dx := p.X - x
	dy := p.Y - y
	return dx*dx + dy*dy
}

func (p Point) DistanceSquared(q Point) float64 {
	return p.DistanceSquaredTo(q.X, q.Y)
}

func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSquared(q))
}

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}

// PointSet answers "nearest stored point to (x, y)". Implementations are
// read-only after construction.
type PointSet interface {
	Nearest(x, y float64) (Point, error)
	Size() int
}

// copyPoints returns a defensive copy of points so later changes to the
// caller's slice don't affect the point set.
func copyPoints(points []Point) ([]Point, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPoints
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return cp, nil
}
