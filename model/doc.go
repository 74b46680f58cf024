// SPDX-License-Identifier: MIT
// Package: lvnoise/model
//
// Package model maps surface coordinates onto 3D points and evaluates a
// noise module there. Builders use models to turn a module into a 2D map.
//
//   - Plane:    (x, z)        -> source(x, 0, z)
//   - Cylinder: (angle, h)    -> source(cos a, h, sin a), unit radius, angle in degrees
//   - Sphere:   (lat, lon)    -> unit sphere point, degrees
//   - Line:     p in [0, 1]   -> point on a segment, optionally attenuated at the ends
package model
