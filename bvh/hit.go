package bvh

// Hit is the result of a ray query: the shape and element the ray struck,
// the hit parameter along the ray, and the element's local parameterization.
type Hit struct {
	ShapeID   int
	ElementID int
	T         float32
	Euv       [2]float32
}

// PointHit is the result of a closest-point query: the shape and element
// closest to the query point, the Euclidean distance to it, and the
// element's local parameterization.
type PointHit struct {
	ShapeID   int
	ElementID int
	Dist      float32
	Euv       [2]float32
}
