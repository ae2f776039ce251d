package datastructure

// https://en.wikipedia.org/wiki/K-d_tree
// 2-d tree, built by sequential insertion (no rebalancing). Even depth splits on x, odd depth on y.

type kdNode struct {
	point Point
	left  *kdNode
	right *kdNode
	depth int
}

func newKDNode(point Point, depth int) *kdNode {
	return &kdNode{
		point: point,
		depth: depth,
	}
}

func (n *kdNode) splitsOnX() bool {
	return n.depth%2 == 0
}

// isLeft reports whether p belongs to n's left subtree: its axis coordinate is strictly
// less than n's. Equal coordinates go right, for both insertion and search.
func (n *kdNode) isLeft(p Point) bool {
	if n.splitsOnX() {
		return p.X < n.point.X
	}
	return p.Y < n.point.Y
}

// planePoint is the point on n's splitting line closest to q.
func (n *kdNode) planePoint(q Point) Point {
	if n.splitsOnX() {
		return NewPoint(n.point.X, q.Y)
	}
	return NewPoint(q.X, n.point.Y)
}

type KDTreePointSet struct {
	root *kdNode
	size int
}

// NewKDTreePointSet inserts a defensive copy of points in input order.
// points must be non-nil and non-empty.
func NewKDTreePointSet(points []Point) (*KDTreePointSet, error) {
	cp, err := copyPoints(points)
	if err != nil {
		return nil, err
	}

	kd := &KDTreePointSet{}
	for _, p := range cp {
		kd.root = kd.insert(p, kd.root, 0)
		kd.size++
	}
	return kd, nil
}

func (kd *KDTreePointSet) insert(point Point, node *kdNode, depth int) *kdNode {
	if node == nil {
		return newKDNode(point, depth)
	}

	if node.isLeft(point) {
		node.left = kd.insert(point, node.left, depth+1)
	} else {
		node.right = kd.insert(point, node.right, depth+1)
	}
	return node
}

// Nearest returns the point closest to (x, y), usually in O(log N). Distance ties keep the
// point found first (current node before its good side, good side before bad side).
func (kd *KDTreePointSet) Nearest(x, y float64) (Point, error) {
	if kd.root == nil {
		return Point{}, ErrEmptyPointSet
	}

	best := kd.nearest(kd.root, NewPoint(x, y), kd.root, nil)
	return best.point, nil
}

func (kd *KDTreePointSet) nearest(node *kdNode, query Point, best *kdNode, visited *int) *kdNode {
	if node == nil {
		return best
	}
	if visited != nil {
		*visited++
	}

	if node.point.DistanceSquared(query) < best.point.DistanceSquared(query) {
		best = node
	}

	goodSide, badSide := node.right, node.left
	if node.isLeft(query) {
		goodSide, badSide = node.left, node.right
	}

	best = kd.nearest(goodSide, query, best, visited)

	// every point on the bad side is at least as far as the splitting line.
	if node.planePoint(query).DistanceSquared(query) < best.point.DistanceSquared(query) {
		best = kd.nearest(badSide, query, best, visited)
	}
	return best
}

func (kd *KDTreePointSet) Size() int {
	return kd.size
}

// Height returns the number of levels in the tree, 0 for an empty tree.
func (kd *KDTreePointSet) Height() int {
	return height(kd.root)
}

func height(node *kdNode) int {
	if node == nil {
		return 0
	}
	return 1 + max(height(node.left), height(node.right))
}
