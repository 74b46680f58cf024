// SPDX-License-Identifier: MIT
// Package: lvnoise/builder
//
// constants.go — shared defaults and method tokens for builders.

package builder

// Default destination size used when WithSize is not supplied.
const (
	DefaultWidth  = 256
	DefaultHeight = 256
)

// Plane defaults: the unit square on the x/z plane.
const (
	DefaultPlaneLowerX = 0.0
	DefaultPlaneUpperX = 1.0
	DefaultPlaneLowerZ = 0.0
	DefaultPlaneUpperZ = 1.0
)

// Cylinder defaults: a full turn of angle (degrees) and height [-1, 1].
const (
	DefaultCylinderLowerAngle  = -180.0
	DefaultCylinderUpperAngle  = 180.0
	DefaultCylinderLowerHeight = -1.0
	DefaultCylinderUpperHeight = 1.0
)

// Sphere defaults: the whole globe in degrees.
const (
	DefaultSphereSouth = -90.0
	DefaultSphereNorth = 90.0
	DefaultSphereWest  = -180.0
	DefaultSphereEast  = 180.0
)

// Kind labels, used both as Prometheus label values and as error context.
const (
	KindPlane    = "plane"
	KindCylinder = "cylinder"
	KindSphere   = "sphere"
)

// Method tokens for error context.
const (
	MethodPlane          = "Plane.Build"
	MethodPlaneBounds    = "Plane.SetBounds"
	MethodCylinder       = "Cylinder.Build"
	MethodCylinderBounds = "Cylinder.SetBounds"
	MethodSphere         = "Sphere.Build"
	MethodSphereBounds   = "Sphere.SetBounds"
	MethodSetSize        = "SetSize"
	MethodSetSource      = "SetSourceModule"
)
