package datastructure

// NaivePointSet finds the nearest point with a linear scan. Used as the
// reference for KDTreePointSet.
type NaivePointSet struct {
	points []Point
}

// NewNaivePointSet makes a defensive copy of points. points must be non-nil and non-empty.
func NewNaivePointSet(points []Point) (*NaivePointSet, error) {
	cp, err := copyPoints(points)
	if err != nil {
		return nil, err
	}
	return &NaivePointSet{points: cp}, nil
}

// Nearest returns the point closest to (x, y) in O(N). On ties the first point in
// construction order wins.
func (ps *NaivePointSet) Nearest(x, y float64) (Point, error) {
	if len(ps.points) == 0 {
		return Point{}, ErrEmptyPointSet
	}

	nearest := ps.points[0]
	minDist := nearest.DistanceSquaredTo(x, y)
	for _, p := range ps.points[1:] {
		dist := p.DistanceSquaredTo(x, y)
		if dist < minDist {
			minDist = dist
			nearest = p
		}
	}
	return nearest, nil
}

func (ps *NaivePointSet) Size() int {
	return len(ps.points)
}
