// Package builder defines shared constants used by triangulation builders.
package builder

// Method name tags used to prefix constructor errors.
const (
	MethodTriangles     = "Triangles"
	MethodFan           = "Fan"
	MethodWheel         = "Wheel"
	MethodStrip         = "Strip"
	MethodGrid          = "Grid"
	MethodPlatonicSolid = "PlatonicSolid"
)

// Minimum sizes.
const (
	// MinFanTriangles: a fan needs at least one triangle.
	MinFanTriangles = 1
	// MinWheelTriangles: a closed fan needs three spokes to avoid a doubled edge.
	MinWheelTriangles = 3
	// MinStripTriangles: a strip needs at least one triangle.
	MinStripTriangles = 1
	// MinGridDim applies to both rows and cols.
	MinGridDim = 1
)
