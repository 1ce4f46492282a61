package geometry

// Point3D is a position in world space. Cube vertices are fixed constants
// for the process lifetime; only the camera moves.
type Point3D struct {
	X, Y, Z float32
}

// HalfExtent is the cube's half side length in world units (side = 200).
const HalfExtent = 100

// CubeVertices are the 8 corners of the demo cube, centered on the origin.
// Order matters: the near face (z = -HalfExtent) is 0-3, the far face
// (z = +HalfExtent) is 4-7, and CubeEdges indexes into this order.
var CubeVertices = [8]Point3D{
	{-HalfExtent, -HalfExtent, -HalfExtent}, // 0 near
	{HalfExtent, -HalfExtent, -HalfExtent},  // 1 near
	{HalfExtent, HalfExtent, -HalfExtent},   // 2 near
	{-HalfExtent, HalfExtent, -HalfExtent},  // 3 near
	{-HalfExtent, -HalfExtent, HalfExtent},  // 4 far
	{HalfExtent, -HalfExtent, HalfExtent},   // 5 far
	{HalfExtent, HalfExtent, HalfExtent},    // 6 far
	{-HalfExtent, HalfExtent, HalfExtent},   // 7 far
}

// CubeEdges lists the 12 cube edges as index pairs into CubeVertices:
// the near face loop, the far face loop, and the four connecting edges.
// Every index is in 0-7.
var CubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // near face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // far face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting edges
}
